package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/solarsync/internal/server/handlers"
	"github.com/iudanet/solarsync/internal/server/jwt"
	"github.com/iudanet/solarsync/pkg/api"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// claimsHandler проверяет, что claims попали в контекст
func claimsHandler(t *testing.T, wantSubject string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := handlers.GetClaims(r.Context())
		require.True(t, ok, "claims should be in context")
		assert.Equal(t, wantSubject, claims.Subject)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func errorType(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Type
}

func TestAuthMiddleware_Success(t *testing.T) {
	svc := jwt.NewService(testSecret, time.Hour)
	token, _, err := svc.Issue("tablet-7", []string{"appAAAAAAAAAAAAAA"})
	require.NoError(t, err)

	handler := AuthMiddleware(setupTestLogger(), svc)(claimsHandler(t, "tablet-7"))

	req := httptest.NewRequest(http.MethodGet, "/v0/appAAAAAAAAAAAAAA/Clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	svc := jwt.NewService(testSecret, time.Hour)
	otherSvc := jwt.NewService("ffffffffffffffffffffffffffffffff", time.Hour)
	foreign, _, err := otherSvc.Issue("intruder", []string{jwt.AllBases})
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{name: "missing header", header: "", wantMessage: "missing token"},
		{name: "no scheme", header: "token-only", wantMessage: "invalid token format"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantMessage: "invalid token format"},
		{name: "empty bearer", header: "Bearer ", wantMessage: "invalid token format"},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantMessage: "invalid token"},
		{name: "wrong secret", header: "Bearer " + foreign, wantMessage: "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := AuthMiddleware(setupTestLogger(), svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/v0/appAAAAAAAAAAAAAA/Clients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, handlers.ErrTypeAuthRequired, errorType(t, w))
			assert.Contains(t, w.Body.String(), tt.wantMessage)
		})
	}
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	svc := jwt.NewService(testSecret, 0)
	token, _, err := svc.Issue("demo", []string{jwt.AllBases})
	require.NoError(t, err)

	handler := AuthMiddleware(setupTestLogger(), svc)(claimsHandler(t, "demo"))

	req := httptest.NewRequest(http.MethodGet, "/v0/appAAAAAAAAAAAAAA/Clients", nil)
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
