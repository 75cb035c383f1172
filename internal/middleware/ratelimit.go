package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for the rate limiter middleware.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit (tokens added per second).
	RequestsPerSecond float64
	// Burst is the maximum number of requests allowed in a burst.
	Burst int
}

// bucket tracks one caller's limiter and when it was last seen.
type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// staleAfter is how long an idle caller keeps its bucket.
const staleAfter = 10 * time.Minute

// RateLimiter returns an HTTP middleware enforcing a per-caller token-bucket
// rate limit. Callers presenting a bearer credential are keyed by a digest of
// that credential, so staff behind a salon's shared NAT do not share a
// bucket; anonymous callers are keyed by client IP. Over-limit requests get
// 429 Too Many Requests with standard rate-limit headers.
func RateLimiter(cfg RateLimitConfig) func(http.Handler) http.Handler {
	var mu sync.Mutex
	buckets := make(map[string]*bucket)

	// Drop buckets for callers that have gone quiet.
	go func() {
		for {
			time.Sleep(5 * time.Minute)
			mu.Lock()
			for key, b := range buckets {
				if time.Since(b.lastSeen) > staleAfter {
					delete(buckets, key)
				}
			}
			mu.Unlock()
		}
	}()

	take := func(key string) (allowed bool, remaining int) {
		mu.Lock()
		defer mu.Unlock()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)}
			buckets[key] = b
		}
		b.lastSeen = time.Now()
		return b.limiter.Allow(), int(b.limiter.Tokens())
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, remaining := take(limiterKey(r))
			if !allowed {
				w.Header().Set("Retry-After", "1")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"code":    "RATE_LIMITED",
					"message": "rate limit exceeded",
				})
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Burst))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Second).Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}

// limiterKey picks the bucket key for a request. The bearer token is digested
// so credentials never sit in the bucket map as keys.
func limiterKey(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && token != "" {
		sum := sha256.Sum256([]byte(token))
		return "cred:" + hex.EncodeToString(sum[:8])
	}
	return "ip:" + clientIP(r)
}

// clientIP extracts the client IP address from the request, stripping the
// port. Only RemoteAddr is used. X-Forwarded-For is untrusted and ignored to
// prevent rate-limit bypass via header spoofing.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
