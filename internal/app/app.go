// Package app provides application-level wiring and dependency injection
// for the salonhub server.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"salonhub/internal/config"
	"salonhub/internal/db/repository"
	"salonhub/internal/middleware"
	"salonhub/internal/service"
)

// Deps holds the external dependencies that main() must provide: database
// handles, config, and the logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// Services groups the service pointers the API handler needs. Auth is nil in
// production, which removes the dev-mode token route.
type Services struct {
	Salon          *service.SalonService
	Appointment    *service.AppointmentService
	SupportSession *service.SupportSessionService
	Audit          *service.AuditService
	Auth           *service.AuthService
}

// App holds the fully-wired application.
type App struct {
	Services      Services
	Authenticator *middleware.Authenticator
	Housekeeper   *service.Housekeeper
}

// New wires all repositories and services from the provided deps.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg

	// Repositories run on the write pool so every read observes its own
	// writes. The audit query surface is the one read-heavy path with no
	// write-after-read dependency, so it gets the read pool.
	salonRepo := repository.NewSalonRepo(deps.WriteDB)
	staffRepo := repository.NewStaffRepo(deps.WriteDB)
	appointmentRepo := repository.NewAppointmentRepo(deps.WriteDB)
	sessionRepo := repository.NewSupportSessionRepo(deps.WriteDB)
	auditRepo := repository.NewAuditRepo(deps.WriteDB)
	auditReadRepo := repository.NewAuditRepo(deps.ReadDB)

	// Credential verification: OIDC/JWKS when an IdP is configured, shared
	// HS256 secret otherwise.
	var validator middleware.JWTValidator
	switch {
	case cfg.Auth.JWKSURL != "":
		v, err := middleware.NewOIDCValidatorFromJWKS(ctx, cfg.Auth.JWKSURL, cfg.Auth.IssuerURL, cfg.Auth.Audience, cfg.Auth.AllowedIssuers)
		if err != nil {
			return nil, fmt.Errorf("jwks validator: %w", err)
		}
		validator = v
	case cfg.Auth.IssuerURL != "":
		v, err := middleware.NewOIDCValidator(ctx, cfg.Auth.IssuerURL, cfg.Auth.Audience, cfg.Auth.AllowedIssuers)
		if err != nil {
			return nil, fmt.Errorf("oidc validator: %w", err)
		}
		validator = v
	default:
		v, err := middleware.NewHS256Validator(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("hs256 validator: %w", err)
		}
		validator = v
	}

	// The issuer always signs with the local secret: support-session
	// exchange mints credentials regardless of the IdP.
	issuer, err := service.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	sessionSvc := service.NewSupportSessionService(sessionRepo, salonRepo, auditRepo, issuer, deps.Logger)

	services := Services{
		Salon:          service.NewSalonService(salonRepo, staffRepo),
		Appointment:    service.NewAppointmentService(appointmentRepo, staffRepo),
		SupportSession: sessionSvc,
		Audit:          service.NewAuditService(auditReadRepo),
	}
	if !cfg.IsProduction() {
		services.Auth = service.NewAuthService(staffRepo, issuer)
	}

	if cfg.SeedFile != "" {
		if err := SeedFromFile(ctx, cfg.SeedFile, salonRepo, staffRepo, deps.Logger); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	return &App{
		Services:      services,
		Authenticator: middleware.NewAuthenticator(validator, deps.Logger),
		Housekeeper:   service.NewHousekeeper(sessionSvc, cfg.SupportSessionRetention, deps.Logger),
	}, nil
}
