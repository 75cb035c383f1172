package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"salonhub/internal/domain"
)

// Authenticator resolves bearer credentials into a caller Identity and
// enforces per-route policies. One instance serves all routes; the policy is
// supplied at route registration.
type Authenticator struct {
	validator JWTValidator
	logger    *slog.Logger
}

// NewAuthenticator creates the pipeline entry point.
func NewAuthenticator(validator JWTValidator, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{validator: validator, logger: logger.With("component", "auth")}
}

// Pipeline returns the middleware enforcing the given route policy:
// credential resolution, then the role check. Public routes pass through
// untouched and produce no Identity, regardless of header contents.
func (a *Authenticator) Pipeline(policy domain.RoutePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if policy.Public {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := a.resolve(r)
			if err != nil {
				a.deny(w, r, err)
				return
			}

			if !policy.Allows(identity.Role) {
				a.deny(w, r, domain.ErrForbiddenRole(
					"role %s is not permitted on this route (allowed: %s)",
					identity.Role, strings.Join(policy.AllowedRoles.Strings(), ", ")))
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.WithIdentity(r.Context(), *identity)))
		})
	}
}

// resolve turns the Authorization header into a verified Identity. The
// identity is derived once per request and is immutable afterwards.
func (a *Authenticator) resolve(r *http.Request) (*domain.Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, domain.ErrMalformedCredential("missing Authorization header")
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, domain.ErrMalformedCredential("Authorization header must be of the form \"Bearer <token>\"")
	}

	claims, err := a.validator.Validate(r.Context(), token)
	if err != nil {
		return nil, domain.ErrUnauthenticated("credential rejected: %v", err)
	}
	if claims.Subject == "" {
		return nil, domain.ErrUnauthenticated("credential carries no subject")
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrUnauthenticated("credential carries no usable role: %v", err)
	}
	if role != domain.RoleSuperAdmin && claims.SalonID == "" {
		return nil, domain.ErrUnauthenticated("credential carries no salon claim")
	}

	return &domain.Identity{
		UserID:        claims.Subject,
		Role:          role,
		SalonID:       claims.SalonID,
		ActingSalonID: claims.ActingSalonID,
	}, nil
}

// deny writes the terminal decision for a failed check.
func (a *Authenticator) deny(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *domain.AuthError
	if e, ok := err.(*domain.AuthError); ok {
		authErr = e
	} else {
		authErr = domain.ErrUnauthenticated("%v", err)
	}

	status := http.StatusUnauthorized
	switch authErr.Kind {
	case domain.KindForbiddenRole, domain.KindForbiddenTenant:
		status = http.StatusForbidden
	}

	a.logger.Info("request denied",
		"kind", string(authErr.Kind),
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    string(authErr.Kind),
		"message": authErr.Reason,
	})
}
