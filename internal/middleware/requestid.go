package middleware

import (
	"context"
	"net/http"

	"salonhub/internal/domain"
)

type requestIDKey struct{}

// maxRequestIDLen caps inbound X-Request-ID values; anything longer (or
// carrying non-token characters) is replaced rather than echoed into logs.
const maxRequestIDLen = 64

// RequestID assigns each request an ID for log correlation. A well-formed
// inbound X-Request-ID is honored so IDs survive proxies; otherwise a fresh
// UUIDv7 is minted, matching the platform's entity ID shape. The ID is echoed
// on the response and stored in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if !validRequestID(id) {
			id = domain.NewID()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is present.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}
