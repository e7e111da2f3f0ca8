package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachlab/luach-api/internal/service/auth"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	jwtService := auth.NewTestJWTService(testSecret, 60*time.Minute, time.Now)
	middleware := NewAuthMiddleware(jwtService)

	protected := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := GetUserID(r)
		require.True(t, ok)
		assert.Equal(t, userID, got)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid bearer token passes through", func(t *testing.T) {
		t.Parallel()
		token, err := jwtService.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/calendar/month", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/calendar/month", nil)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/calendar/month", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		past := auth.NewTestJWTService(testSecret, 60*time.Minute, func() time.Time {
			return time.Now().Add(-2 * time.Hour)
		})
		token, err := past.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/calendar/month", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token is not accepted", func(t *testing.T) {
		t.Parallel()
		token, err := jwtService.GenerateRefreshToken(context.Background(), userID)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/calendar/month", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
