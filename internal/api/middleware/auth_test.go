package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/api/shared"
	"github.com/phrazzld/taskdeck-api/internal/mocks"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name            string
		authHeader      string
		validateErr     error
		claims          *auth.Claims
		expectedStatus  int
		expectedMessage string
		expectValidate  bool
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectValidate: true,
		},
		{
			name:            "missing auth header",
			authHeader:      "",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgNoToken,
		},
		{
			name:            "wrong scheme",
			authHeader:      "Basic dXNlcjpwYXNz",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgNoToken,
		},
		{
			name:            "bearer without token",
			authHeader:      "Bearer ",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgNoToken,
		},
		{
			name:            "expired token",
			authHeader:      "Bearer expired-token",
			validateErr:     auth.ErrExpiredToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgTokenFailed,
			expectValidate:  true,
		},
		{
			name:            "invalid token",
			authHeader:      "Bearer invalid-token",
			validateErr:     auth.ErrInvalidToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgTokenFailed,
			expectValidate:  true,
		},
		{
			name:            "unexpected validation failure",
			authHeader:      "Bearer some-token",
			validateErr:     errors.New("key store unavailable"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Authentication error",
			expectValidate:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			validated := false
			jwtService := &mocks.MockJWTService{
				ValidateTokenFn: func(_ context.Context, _ string) (*auth.Claims, error) {
					validated = true
					return tt.claims, tt.validateErr
				},
			}
			mw := NewAuthMiddleware(jwtService)

			var capturedUserID uuid.UUID
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedUserID, _ = shared.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectValidate, validated)

			if tt.expectedStatus == http.StatusOK {
				assert.True(t, nextCalled)
				assert.Equal(t, userID, capturedUserID)
				return
			}

			assert.False(t, nextCalled, "handler must not run for rejected requests")
			var body shared.Envelope
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.expectedMessage, body.Error)
		})
	}
}

func TestAuthMiddleware_ExpiredAndInvalidLookAlike(t *testing.T) {
	t.Parallel()

	respond := func(err error) string {
		mw := NewAuthMiddleware(&mocks.MockJWTService{ValidateErr: err})
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rr := httptest.NewRecorder()
		mw.Authenticate(http.NotFoundHandler()).ServeHTTP(rr, req)
		return rr.Body.String()
	}

	assert.Equal(t, respond(auth.ErrExpiredToken), respond(auth.ErrInvalidToken))
}

func TestAuthMiddleware_RedactsLoggedErrors(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewTestLogger()
	secretErr := errors.New("lookup failed for postgres://admin:hunter2@db:5432/tasks")
	mw := NewAuthMiddleware(&mocks.MockJWTService{ValidateErr: secretErr})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer tok")
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	rr := httptest.NewRecorder()

	mw.Authenticate(http.NotFoundHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hunter2")
	assert.NotContains(t, buf.String(), "hunter2")
	assert.Contains(t, buf.String(), "Authentication error")
}

func TestNewAuthMiddleware_NilService(t *testing.T) {
	assert.Panics(t, func() { NewAuthMiddleware(nil) })
}
