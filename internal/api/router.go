package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"salonhub/internal/domain"
	"salonhub/internal/middleware"
)

// route binds one endpoint to its static authorization policy. The table is
// built once at startup and consumed read-only by the pipeline.
type route struct {
	method  string
	pattern string
	policy  domain.RoutePolicy
	// salonScoped routes carry a {salonID} URL parameter that must match the
	// caller's effective salon.
	salonScoped bool
	handler     http.HandlerFunc
}

// RouterConfig holds the dependencies the router needs beyond the handler.
type RouterConfig struct {
	Authenticator      *middleware.Authenticator
	RateLimit          middleware.RateLimitConfig
	CORSAllowedOrigins []string
	Logger             *slog.Logger
}

// NewRouter assembles the chi router: ambient middleware first, then every
// route wrapped in its own authorization pipeline.
func NewRouter(h *APIHandler, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RateLimiter(cfg.RateLimit))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	manage := domain.RequireRoles(domain.RoleOwner, domain.RoleManager, domain.RoleReceptionist, domain.RoleSuperAdmin)
	hire := domain.RequireRoles(domain.RoleOwner, domain.RoleManager, domain.RoleSuperAdmin)
	platform := domain.RequireRoles(domain.RoleSuperAdmin)

	table := []route{
		{method: http.MethodGet, pattern: "/healthz", policy: domain.PublicRoute(), handler: h.Healthz},

		{method: http.MethodGet, pattern: "/v1/salons/{salonID}", policy: domain.AnyAuthenticated(), salonScoped: true, handler: h.GetSalon},
		{method: http.MethodGet, pattern: "/v1/salons/{salonID}/staff", policy: domain.AnyAuthenticated(), salonScoped: true, handler: h.ListStaff},
		{method: http.MethodPost, pattern: "/v1/salons/{salonID}/staff", policy: hire, salonScoped: true, handler: h.AddStaff},

		{method: http.MethodGet, pattern: "/v1/salons/{salonID}/appointments", policy: domain.AnyAuthenticated(), salonScoped: true, handler: h.ListAppointments},
		{method: http.MethodPost, pattern: "/v1/salons/{salonID}/appointments", policy: manage, salonScoped: true, handler: h.BookAppointment},
		{method: http.MethodGet, pattern: "/v1/salons/{salonID}/appointments/{appointmentID}", policy: domain.AnyAuthenticated(), salonScoped: true, handler: h.GetAppointment},
		{method: http.MethodPatch, pattern: "/v1/salons/{salonID}/appointments/{appointmentID}", policy: manage, salonScoped: true, handler: h.UpdateAppointment},
		{method: http.MethodDelete, pattern: "/v1/salons/{salonID}/appointments/{appointmentID}", policy: manage, salonScoped: true, handler: h.DeleteAppointment},

		{method: http.MethodPost, pattern: "/v1/support-sessions", policy: platform, handler: h.CreateSupportSession},
		{method: http.MethodGet, pattern: "/v1/support-sessions", policy: platform, handler: h.ListSupportSessions},
		{method: http.MethodDelete, pattern: "/v1/support-sessions/{sessionID}", policy: platform, handler: h.RevokeSupportSession},
		// The one-time token is the authentication here.
		{method: http.MethodPost, pattern: "/v1/support-sessions/exchange", policy: domain.PublicRoute(), handler: h.ExchangeSupportToken},

		{method: http.MethodGet, pattern: "/v1/audit", policy: platform, handler: h.ListAudit},
	}
	if h.auth != nil {
		table = append(table, route{
			method: http.MethodPost, pattern: "/v1/auth/token",
			policy: domain.PublicRoute(), handler: h.DevToken,
		})
	}

	salonScope := middleware.SalonScope(cfg.Logger)
	for _, rt := range table {
		mws := []func(http.Handler) http.Handler{cfg.Authenticator.Pipeline(rt.policy)}
		if rt.salonScoped {
			mws = append(mws, salonScope)
		}
		r.With(mws...).Method(rt.method, rt.pattern, rt.handler)
	}

	return r
}
