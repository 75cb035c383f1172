package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serveLimited(t *testing.T, mw func(http.Handler) http.Handler, remoteAddr, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/v1/salons/s-1", nil)
	req.RemoteAddr = remoteAddr
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BurstExhaustion(t *testing.T) {
	mw := RateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})

	assert.Equal(t, http.StatusOK, serveLimited(t, mw, "10.0.0.1:1234", "").Code)
	assert.Equal(t, http.StatusOK, serveLimited(t, mw, "10.0.0.1:1234", "").Code)

	rec := serveLimited(t, mw, "10.0.0.1:1234", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
}

func TestRateLimiter_CredentialsGetSeparateBuckets(t *testing.T) {
	mw := RateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})

	// Two staff members behind the same address each get their own bucket.
	assert.Equal(t, http.StatusOK, serveLimited(t, mw, "10.0.0.1:1234", "Bearer token-one").Code)
	assert.Equal(t, http.StatusOK, serveLimited(t, mw, "10.0.0.1:1234", "Bearer token-two").Code)
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(t, mw, "10.0.0.1:1234", "Bearer token-one").Code)
}

func TestRateLimiter_AnonymousKeyedByIP(t *testing.T) {
	mw := RateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})

	assert.Equal(t, http.StatusOK, serveLimited(t, mw, "10.0.0.1:1234", "").Code)
	assert.Equal(t, http.StatusOK, serveLimited(t, mw, "10.0.0.2:1234", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(t, mw, "10.0.0.1:9999", "").Code,
		"same IP on a new port shares the bucket")
}

func TestRateLimiter_SetsHeaders(t *testing.T) {
	mw := RateLimiter(RateLimitConfig{RequestsPerSecond: 10, Burst: 5})

	rec := serveLimited(t, mw, "10.0.0.1:1234", "Bearer token-one")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestLimiterKey(t *testing.T) {
	withToken := httptest.NewRequest(http.MethodGet, "/", nil)
	withToken.Header.Set("Authorization", "Bearer abc")
	withToken.RemoteAddr = "10.0.0.1:1234"

	anonymous := httptest.NewRequest(http.MethodGet, "/", nil)
	anonymous.RemoteAddr = "10.0.0.1:1234"

	assert.NotEqual(t, limiterKey(withToken), limiterKey(anonymous))
	assert.Equal(t, "ip:10.0.0.1", limiterKey(anonymous))
	assert.NotContains(t, limiterKey(withToken), "abc", "raw credential must not be the key")
}
