package misc

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/hamzfitness/internal/auth"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

var testAdmin = &auth.Admin{
	Username:     "testuser",
	PasswordHash: "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i", // testpass
}

func newTestHandler(t *testing.T) (*Handler, redismock.ClientMock, *auth.Service) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() { db.Close() })

	authService := auth.NewAuthService(testAdmin, time.Hour, db)
	handler := NewHandler("test-version-info", authService)
	return handler, mock, authService
}

func TestHandler_handleRoot(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)

	handler.handleRoot(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "I'm OK, thanks ;)", rec.Body.String())
}

func TestHandler_handleGetVersionInfo(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/version", nil)
	require.NoError(t, err)

	handler.handleGetVersionInfo(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version-info", rec.Body.String())
}

func TestHandler_handleLogin(t *testing.T) {
	handler, mock, authService := newTestHandler(t)

	testToken := "test_token"
	authService.RandStringFunc = func(s int) (string, error) {
		return testToken, nil
	}

	mock.Regexp().ExpectSet("hamz-fitness-session||"+testToken, `\d+`, 0).SetVal("OK")
	mock.ExpectSAdd("hamz-fitness-sessions", testToken).SetVal(1)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest(
		"POST", "/a/login",
		bytes.NewReader([]byte(`{"username":"testuser","password":"testpass"}`)),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	handler.handleLogin(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fmt.Sprintf(`{"token": "%s"}`, testToken), rec.Body.String())
}

func TestHandler_handleLogin_WrongCredentials(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest(
		"POST", "/a/login",
		bytes.NewReader([]byte(`{"username":"testuser","password":"wrong-pass"}`)),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	handler.handleLogin(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_handleLogin_EmptyFields(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	for _, body := range []string{
		`{"username":"","password":"testpass"}`,
		`{"username":"testuser","password":""}`,
	} {
		rec := httptest.NewRecorder()
		req, err := http.NewRequest("POST", "/a/login", bytes.NewReader([]byte(body)))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		handler.handleLogin(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_handleLogout_NoToken(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/a/logout", nil)
	require.NoError(t, err)

	handler.handleLogout(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
