package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"salonhub/internal/domain"
)

func TestHTTPStatusFromDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrMalformedCredential("x"), http.StatusUnauthorized},
		{domain.ErrUnauthenticated("x"), http.StatusUnauthorized},
		{domain.ErrInvalidSupportToken("x"), http.StatusUnauthorized},
		{domain.ErrForbiddenRole("x"), http.StatusForbidden},
		{domain.ErrForbiddenTenant("x"), http.StatusForbidden},
		{domain.ErrAlreadyConsumed("x"), http.StatusConflict},
		{domain.ErrExpiredSupportToken("x"), http.StatusGone},
		{domain.ErrNotFound("x"), http.StatusNotFound},
		{domain.ErrValidation("x"), http.StatusBadRequest},
		{domain.ErrConflict("x"), http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, httpStatusFromDomainError(tc.err), "%v", tc.err)
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "FORBIDDEN_TENANT", errorCode(domain.ErrForbiddenTenant("x")))
	assert.Equal(t, "EXPIRED_SUPPORT_TOKEN", errorCode(domain.ErrExpiredSupportToken("x")))
	assert.Equal(t, "NOT_FOUND", errorCode(domain.ErrNotFound("x")))
	assert.Equal(t, "INVALID_REQUEST", errorCode(domain.ErrValidation("x")))
	assert.Equal(t, "CONFLICT", errorCode(domain.ErrConflict("x")))
	assert.Equal(t, "INTERNAL", errorCode(assert.AnError))
}
