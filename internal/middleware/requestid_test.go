package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serveWithRequestID(t *testing.T, inbound string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var ctxID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set("X-Request-ID", inbound)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, ctxID
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	rec, ctxID := serveWithRequestID(t, "")
	assert.NotEmpty(t, ctxID)
	assert.Equal(t, ctxID, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_InboundHonored(t *testing.T) {
	rec, ctxID := serveWithRequestID(t, "proxy-abc.123")
	assert.Equal(t, "proxy-abc.123", ctxID)
	assert.Equal(t, "proxy-abc.123", rec.Header().Get("X-Request-ID"))
}

func TestRequestID_GarbageReplaced(t *testing.T) {
	_, ctxID := serveWithRequestID(t, "evil\r\nheader-injection")
	assert.NotContains(t, ctxID, "\r")
	assert.NotEqual(t, "evil\r\nheader-injection", ctxID)

	_, ctxID = serveWithRequestID(t, strings.Repeat("a", 200))
	assert.LessOrEqual(t, len(ctxID), maxRequestIDLen)
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(t.Context()))
}
