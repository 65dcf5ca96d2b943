package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RachelleMaina/stocka-sync/internal/server/handlers"
	"github.com/RachelleMaina/stocka-sync/internal/server/jwt"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// claimsCheckingHandler asserts the device claims landed in the context
func claimsCheckingHandler(t *testing.T, wantDeviceID, wantBizID, wantStoreID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := handlers.GetDeviceClaims(r.Context())
		require.True(t, ok, "device claims should be in context")
		assert.Equal(t, wantDeviceID, claims.DeviceID)
		assert.Equal(t, wantBizID, claims.BusinessLocationID)
		assert.Equal(t, wantStoreID, claims.StoreLocationID)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	logger := setupTestLogger()
	svc := jwt.NewService("test-secret-key", 15*time.Minute)

	token, _, err := svc.GenerateDeviceToken("device-1", "biz-1", "store-1")
	require.NoError(t, err)

	wrapped := AuthMiddleware(logger, svc)(claimsCheckingHandler(t, "device-1", "biz-1", "store-1"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_MissingAuthHeader(t *testing.T) {
	logger := setupTestLogger()
	svc := jwt.NewService("test-secret-key", 15*time.Minute)

	wrapped := AuthMiddleware(logger, svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	logger := setupTestLogger()
	svc := jwt.NewService("test-secret-key", 15*time.Minute)

	wrapped := AuthMiddleware(logger, svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	for _, header := range []string{"token-without-scheme", "Basic dXNlcjpwYXNz"} {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", header)

		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	logger := setupTestLogger()
	issuer := jwt.NewService("test-secret-key", -time.Minute)
	verifier := jwt.NewService("test-secret-key", 15*time.Minute)

	token, _, err := issuer.GenerateDeviceToken("device-1", "biz-1", "store-1")
	require.NoError(t, err)

	wrapped := AuthMiddleware(logger, verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	logger := setupTestLogger()
	issuer := jwt.NewService("secret-a", 15*time.Minute)
	verifier := jwt.NewService("secret-b", 15*time.Minute)

	token, _, err := issuer.GenerateDeviceToken("device-1", "biz-1", "store-1")
	require.NoError(t, err)

	wrapped := AuthMiddleware(logger, verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
