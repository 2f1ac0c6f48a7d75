package api

import (
	"net/http"
	"testing"

	"moodly/pin-api/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	a, _ := newTestAPI(t)

	created, _ := register(t, a, "alice", "alice@example.com")
	assert.Equal(t, "alice", created["userName"])
	assert.Equal(t, "alice@example.com", created["email"])
	assert.NotEmpty(t, created["id"])
	assert.NotContains(t, created, "hashedPassword")

	rec := doJSON(t, a, http.MethodPost, "/users/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "supersecret",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	loggedIn := decodeBody(t, rec)
	assert.Equal(t, created["id"], loggedIn["id"])
	assert.Equal(t, created["userName"], loggedIn["userName"])
	assert.NotContains(t, loggedIn, "hashedPassword")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	var token string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			token = ck.Value
			assert.True(t, ck.HttpOnly)
			assert.Equal(t, 60*60*24*30, ck.MaxAge)
		}
	}
	require.NotEmpty(t, token)
}

func TestRegisterMissingFields(t *testing.T) {
	a, _ := newTestAPI(t)

	rec := doJSON(t, a, http.MethodPost, "/users/auth/register", gin.H{
		"userName": "alice",
		"email":    "alice@example.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required!", decodeBody(t, rec)["message"])
}

func TestRegisterDuplicate(t *testing.T) {
	a, _ := newTestAPI(t)
	register(t, a, "alice", "alice@example.com")

	// Same handle, different email
	rec := doJSON(t, a, http.MethodPost, "/users/auth/register", gin.H{
		"userName":    "alice",
		"displayName": "Imposter",
		"email":       "other@example.com",
		"password":    "supersecret",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Username or email already exists!", decodeBody(t, rec)["message"])

	// Same email, different handle
	rec = doJSON(t, a, http.MethodPost, "/users/auth/register", gin.H{
		"userName":    "alice2",
		"displayName": "Imposter",
		"email":       "alice@example.com",
		"password":    "supersecret",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	var n int64
	require.NoError(t, a.DB.Table("users").Count(&n).Error)
	assert.EqualValues(t, 1, n, "failed registrations must not create records")
}

func TestLoginEnumerationResistance(t *testing.T) {
	a, _ := newTestAPI(t)
	register(t, a, "alice", "alice@example.com")

	wrongPass := doJSON(t, a, http.MethodPost, "/users/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	}, "")
	unknownEmail := doJSON(t, a, http.MethodPost, "/users/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "supersecret",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

	// Identical messages so the two failure causes can't be told apart
	assert.Equal(t, "Invalid email or password", decodeBody(t, wrongPass)["message"])
	assert.Equal(t, decodeBody(t, wrongPass)["message"], decodeBody(t, unknownEmail)["message"])
}

func TestLogoutClearsCookie(t *testing.T) {
	a, _ := newTestAPI(t)

	rec := doJSON(t, a, http.MethodPost, "/users/auth/logout", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logout successful", decodeBody(t, rec)["message"])

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must expire the token cookie")

	// Logging out twice is fine
	rec = doJSON(t, a, http.MethodPost, "/users/auth/logout", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMeRequiresAuth(t *testing.T) {
	a, _ := newTestAPI(t)

	rec := doJSON(t, a, http.MethodGet, "/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, a, http.MethodGet, "/users/me", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeReturnsOwnProfile(t *testing.T) {
	a, _ := newTestAPI(t)
	created, token := register(t, a, "alice", "alice@example.com")

	rec := doJSON(t, a, http.MethodGet, "/users/me", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	me := decodeBody(t, rec)
	assert.Equal(t, created["id"], me["id"])
	assert.NotContains(t, me, "hashedPassword")
}

func TestMeStaleToken(t *testing.T) {
	a, _ := newTestAPI(t)
	created, token := register(t, a, "alice", "alice@example.com")

	// Identity deleted after token issuance
	require.NoError(t, a.DB.Where("id = ?", created["id"]).Delete(&model.User{}).Error)

	rec := doJSON(t, a, http.MethodGet, "/users/me", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
