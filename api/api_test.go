package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"moodly/pin-api/internal/storage"
	"moodly/pin-api/model"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeMedia stands in for the R2 bucket so handler tests never touch
// the network
type fakeMedia struct {
	lastFilename string
	lastFolder   string
}

func (f *fakeMedia) Upload(_ context.Context, body io.Reader, filename, folder string) (*storage.UploadResult, error) {
	io.Copy(io.Discard, body)
	f.lastFilename = filename
	f.lastFolder = folder

	return &storage.UploadResult{
		URL:    "https://media.test/" + folder + "/" + filename,
		Width:  640,
		Height: 480,
	}, nil
}

func newTestAPI(t *testing.T) (*API, *fakeMedia) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret")
	viper.Set("upload.max_size", int64(5<<20))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.User{}, model.Follow{}, model.Pin{}, model.Board{}, model.Comment{}))

	media := &fakeMedia{}
	return newAPI(db, media), media
}

func doJSON(t *testing.T, a *API, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// register creates a user through the real endpoint and returns the
// response body and the session token from the cookie
func register(t *testing.T, a *API, handle, email string) (map[string]any, string) {
	t.Helper()

	rec := doJSON(t, a, http.MethodPost, "/users/auth/register", gin.H{
		"userName":    handle,
		"displayName": "The " + handle,
		"email":       email,
		"password":    "supersecret",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var token string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			token = ck.Value
		}
	}
	require.NotEmpty(t, token, "register must set the session cookie")

	return decodeBody(t, rec), token
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, file []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}
