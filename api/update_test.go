package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileFields(t *testing.T) {
	a, _ := newTestAPI(t)
	_, token := register(t, a, "alice", "alice@example.com")

	rec := doJSON(t, a, http.MethodPatch, "/users/me", gin.H{
		"displayName": "Alice in Chains",
		"userName":    "alice_c",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeBody(t, rec)
	assert.Equal(t, "Alice in Chains", updated["displayName"])
	assert.Equal(t, "alice_c", updated["userName"])
	assert.NotContains(t, updated, "hashedPassword")

	// The new handle resolves, the old one doesn't
	rec = doJSON(t, a, http.MethodGet, "/users/alice_c", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, a, http.MethodGet, "/users/alice", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUsernameTaken(t *testing.T) {
	a, _ := newTestAPI(t)
	register(t, a, "alice", "alice@example.com")
	_, bobToken := register(t, a, "bob", "bob@example.com")

	rec := doJSON(t, a, http.MethodPatch, "/users/me", gin.H{
		"userName": "alice",
	}, bobToken)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Username already taken!", decodeBody(t, rec)["message"])

	// Alice's record survived the collision attempt
	rec = doJSON(t, a, http.MethodGet, "/users/alice", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decodeBody(t, rec)["userName"])
}

func TestUpdateAvatarUpload(t *testing.T) {
	a, media := newTestAPI(t)
	_, token := register(t, a, "alice", "alice@example.com")

	body, contentType := multipartBody(t, map[string]string{
		"displayName": "Alice",
	}, "profileImage", "me.png", []byte("fake-image-bytes"))

	req := httptest.NewRequest(http.MethodPatch, "/users/me", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeBody(t, rec)
	assert.Equal(t, "https://media.test/moodly-profile-pics/me.png", updated["img"])
	assert.Equal(t, "moodly-profile-pics", media.lastFolder)
}

func TestUpdateRequiresAuth(t *testing.T) {
	a, _ := newTestAPI(t)

	rec := doJSON(t, a, http.MethodPatch, "/users/me", gin.H{"displayName": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
