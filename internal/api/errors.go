package api

import (
	"errors"
	"net/http"

	"salonhub/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var authErr *domain.AuthError
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &authErr):
		return statusFromAuthKind(authErr.Kind)
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// statusFromAuthKind maps terminal authorization decisions to status codes.
func statusFromAuthKind(kind domain.AuthErrorKind) int {
	switch kind {
	case domain.KindMalformedCredential, domain.KindUnauthenticated, domain.KindInvalidSupportToken:
		return http.StatusUnauthorized
	case domain.KindForbiddenRole, domain.KindForbiddenTenant:
		return http.StatusForbidden
	case domain.KindAlreadyConsumed:
		return http.StatusConflict
	case domain.KindExpiredSupportToken:
		return http.StatusGone
	default:
		return http.StatusForbidden
	}
}

// errorCode returns the machine-readable code surfaced to callers.
func errorCode(err error) string {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return string(authErr.Kind)
	}
	switch httpStatusFromDomainError(err) {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}
