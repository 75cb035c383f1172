package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"salonhub/internal/domain"
)

// SalonScope enforces tenant isolation for routes carrying a {salonID} URL
// parameter: the caller's effective salon must match it. Resources resolved
// inside handlers (e.g. an appointment row) are additionally checked against
// their stored owning salon by the service layer.
//
// An absent Identity here is a pipeline-ordering bug — SalonScope must run
// after Authenticator.Pipeline on a non-public route — and is rejected
// outright rather than recovered.
func SalonScope(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "tenant-scope")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := domain.IdentityFromContext(r.Context())
			if !ok {
				log.Error("salon scope reached without resolved identity; check route registration",
					"path", r.URL.Path)
				writeTenantDenied(w, domain.ErrForbiddenTenant("no caller identity"))
				return
			}

			salonID := chi.URLParam(r, "salonID")
			if err := identity.CheckSalonAccess(salonID); err != nil {
				log.Info("cross-salon access denied",
					"caller", identity.UserID,
					"caller_salon", identity.EffectiveSalonID(),
					"target_salon", salonID,
					"request_id", RequestIDFromContext(r.Context()),
				)
				writeTenantDenied(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeTenantDenied(w http.ResponseWriter, err error) {
	kind := domain.KindForbiddenTenant
	reason := err.Error()
	if e, ok := err.(*domain.AuthError); ok {
		kind = e.Kind
		reason = e.Reason
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    string(kind),
		"message": reason,
	})
}
