// Package domain defines core types, interfaces, and errors for the salon platform.
package domain

import "fmt"

// NotFoundError indicates a resource was not found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError indicates a conflict (e.g., duplicate resource).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrConflict creates a ConflictError with a formatted message.
func ErrConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// AuthErrorKind identifies the terminal outcome of a failed authorization check.
type AuthErrorKind string

const (
	KindMalformedCredential AuthErrorKind = "MALFORMED_CREDENTIAL"
	KindUnauthenticated     AuthErrorKind = "UNAUTHENTICATED"
	KindForbiddenRole       AuthErrorKind = "FORBIDDEN_ROLE"
	KindForbiddenTenant     AuthErrorKind = "FORBIDDEN_TENANT"
	KindInvalidSupportToken AuthErrorKind = "INVALID_SUPPORT_TOKEN"
	KindAlreadyConsumed     AuthErrorKind = "ALREADY_CONSUMED"
	KindExpiredSupportToken AuthErrorKind = "EXPIRED_SUPPORT_TOKEN"
)

// AuthError is a terminal authorization decision. It carries a machine
// readable kind plus a human-readable reason for the caller. Authorization
// failures are never retried and never recovered from within a request.
type AuthError struct {
	Kind   AuthErrorKind
	Reason string
}

func (e *AuthError) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Reason) }

// ErrMalformedCredential reports an Authorization header that is absent or
// not in "Bearer <token>" form.
func ErrMalformedCredential(format string, args ...interface{}) *AuthError {
	return &AuthError{Kind: KindMalformedCredential, Reason: fmt.Sprintf(format, args...)}
}

// ErrUnauthenticated reports a credential that failed signature or expiry checks.
func ErrUnauthenticated(format string, args ...interface{}) *AuthError {
	return &AuthError{Kind: KindUnauthenticated, Reason: fmt.Sprintf(format, args...)}
}

// ErrForbiddenRole reports a caller whose role is not in the route's allowed set.
func ErrForbiddenRole(format string, args ...interface{}) *AuthError {
	return &AuthError{Kind: KindForbiddenRole, Reason: fmt.Sprintf(format, args...)}
}

// ErrForbiddenTenant reports an attempted cross-salon access.
func ErrForbiddenTenant(format string, args ...interface{}) *AuthError {
	return &AuthError{Kind: KindForbiddenTenant, Reason: fmt.Sprintf(format, args...)}
}

// ErrInvalidSupportToken reports a support token that matches no known session.
func ErrInvalidSupportToken(format string, args ...interface{}) *AuthError {
	return &AuthError{Kind: KindInvalidSupportToken, Reason: fmt.Sprintf(format, args...)}
}

// ErrAlreadyConsumed reports a second exchange attempt on a single-use support token.
func ErrAlreadyConsumed(format string, args ...interface{}) *AuthError {
	return &AuthError{Kind: KindAlreadyConsumed, Reason: fmt.Sprintf(format, args...)}
}

// ErrExpiredSupportToken reports an exchange attempt after the session TTL elapsed.
func ErrExpiredSupportToken(format string, args ...interface{}) *AuthError {
	return &AuthError{Kind: KindExpiredSupportToken, Reason: fmt.Sprintf(format, args...)}
}
