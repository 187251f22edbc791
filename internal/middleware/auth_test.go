package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/hamzfitness/internal/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoginChecker := NewMockloginChecker(ctrl)
	authMiddleware := middleware.NewAuthMiddlewareHandler(
		"fitnessAppSecret",
		mockLoginChecker,
	)

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		userAgent          string
		authTokenHeader    string
		expectedStatusCode int
		mockIsLogged       bool
		mockIsLoggedErr    error
	}{
		{
			name:               "AllowedPathWithoutToken",
			path:               "/version",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "LoginPathWithoutToken",
			path:               "/a/login",
			method:             "POST",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "NotAllowedPathWithoutToken",
			path:               "/workouts",
			method:             "POST",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidToken",
			path:               "/secure/resource",
			method:             "GET",
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
			mockIsLogged:       true,
		},
		{
			name:               "InvalidToken",
			path:               "/secure/resource",
			method:             "GET",
			token:              "invalid-token",
			expectedStatusCode: http.StatusUnauthorized,
			mockIsLogged:       false,
		},
		{
			name:               "FitnessAppValidSecret",
			path:               "/workouts",
			method:             "POST",
			userAgent:          "HamzFitness/1.0",
			authTokenHeader:    "fitnessAppSecret",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "FitnessAppInvalidSecret",
			path:               "/workouts",
			method:             "POST",
			userAgent:          "HamzFitness/1.0",
			authTokenHeader:    "wrong-secret",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "WebClientStatsWithoutSession",
			path:               "/stats/summary",
			method:             "GET",
			userAgent:          "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "OptionsPreflight",
			path:               "/workouts",
			method:             "OPTIONS",
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			assert.NoError(t, err)
			if tc.token != "" {
				req.Header.Add("X-HAMZ-TOKEN", tc.token)
			}
			if tc.authTokenHeader != "" {
				req.Header.Add("Authorization", tc.authTokenHeader)
			}
			if tc.userAgent != "" {
				req.Header.Add("User-Agent", tc.userAgent)
			}

			if tc.path == "/secure/resource" {
				mockLoginChecker.EXPECT().
					IsLogged(gomock.Any(), tc.token).
					Return(tc.mockIsLogged, tc.mockIsLoggedErr).AnyTimes()
			}

			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
		})
	}
}
