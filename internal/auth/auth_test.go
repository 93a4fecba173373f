package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physiquist/internal/auth"
)

func subjectEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(auth.Subject(r.Context())))
	})
}

func TestLimitMiddleware(t *testing.T) {
	limiter := auth.NewIPRateLimiter(0, 2)
	h := limiter.LimitMiddleware(subjectEcho())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/formulas", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 200, http.StatusTooManyRequests}, codes)

	// another port on the same host shares the bucket
	req := httptest.NewRequest(http.MethodGet, "/api/formulas", nil)
	req.RemoteAddr = "10.0.0.1:9999"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	req.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareWithToken(t *testing.T) {
	key := []byte("secret")
	env := &auth.Authenv{JWTkey: key}
	h := env.AuthMiddleware(subjectEcho())

	token, err := auth.NewToken(key, "lab-3", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lab-3", rec.Body.String())

	other, err := auth.NewToken([]byte("other"), "lab-3", time.Hour)
	require.NoError(t, err)
	expired, err := auth.NewToken(key, "lab-3", -time.Minute)
	require.NoError(t, err)
	for _, bad := range []string{"", "Bearer " + other, "Bearer " + expired, "Bearer junk"} {
		req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
		if bad != "" {
			req.Header.Set("Authorization", bad)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, bad)
	}
}

func TestAuthMiddlewareWithAPIKey(t *testing.T) {
	hash, err := auth.HashKey("k-123")
	require.NoError(t, err)
	env := &auth.Authenv{APIKeyHash: []byte(hash)}
	require.True(t, env.Enabled())
	h := env.AuthMiddleware(subjectEcho())

	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	req.Header.Set(auth.APIKeyHeader, "k-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "api-key", rec.Body.String())

	req.Header.Set(auth.APIKeyHeader, "wrong")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewTokenNeedsKey(t *testing.T) {
	_, err := auth.NewToken(nil, "x", time.Hour)
	assert.ErrorIs(t, err, auth.ErrNoKey)
	assert.False(t, (&auth.Authenv{}).Enabled())
}
