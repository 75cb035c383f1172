package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"salonhub/internal/domain"
)

// SupportSessionService manages delegated support sessions: time-boxed,
// single-use, audited grants that let a SUPER_ADMIN act within one salon.
// Every lifecycle transition is recorded synchronously; if the audit write
// fails, the operation fails.
type SupportSessionService struct {
	sessions domain.SupportSessionRepository
	salons   domain.SalonRepository
	audit    domain.AuditRepository
	issuer   *TokenIssuer
	logger   *slog.Logger
	now      func() time.Time
}

// NewSupportSessionService creates a SupportSessionService.
func NewSupportSessionService(
	sessions domain.SupportSessionRepository,
	salons domain.SalonRepository,
	audit domain.AuditRepository,
	issuer *TokenIssuer,
	logger *slog.Logger,
) *SupportSessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SupportSessionService{
		sessions: sessions,
		salons:   salons,
		audit:    audit,
		issuer:   issuer,
		logger:   logger.With("component", "support-session"),
		now:      time.Now,
	}
}

// ExchangeResult is the outcome of a successful token exchange.
type ExchangeResult struct {
	Session     *domain.SupportSession
	AccessToken string
	ExpiresAt   time.Time
}

// Create opens a support session for the caller (who must already have passed
// the SUPER_ADMIN route policy). It returns the session plus the raw one-time
// token; only the token's SHA-256 hash is persisted.
func (s *SupportSessionService) Create(ctx context.Context, req domain.CreateSupportSessionRequest) (*domain.SupportSession, string, error) {
	caller, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, "", domain.ErrUnauthenticated("authentication required")
	}
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	if _, err := s.salons.GetByID(ctx, req.SalonID); err != nil {
		return nil, "", err
	}

	// 256-bit random token, rendered as 64 hex characters.
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return nil, "", fmt.Errorf("generate support token: %w", err)
	}
	rawToken := hex.EncodeToString(rawBytes)

	now := s.now().UTC()
	session := &domain.SupportSession{
		ID:        domain.NewID(),
		SalonID:   req.SalonID,
		CreatedBy: caller.UserID,
		Reason:    req.Reason,
		TokenHash: hashToken(rawToken),
		IssuedAt:  now,
		ExpiresAt: now.Add(domain.SupportSessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", err
	}
	if err := s.recordAudit(ctx, caller.UserID, domain.AuditSupportSessionCreated, session, req.Reason); err != nil {
		return nil, "", err
	}

	s.logger.Info("support session created",
		"session_id", session.ID, "salon_id", session.SalonID, "created_by", caller.UserID)
	return session, rawToken, nil
}

// Exchange consumes a one-time support token and mints an acting-as
// credential for the session's target salon. Consumption is atomic in the
// store; concurrent exchanges of the same token yield exactly one success.
func (s *SupportSessionService) Exchange(ctx context.Context, rawToken string) (*ExchangeResult, error) {
	if len(rawToken) != 64 {
		return nil, domain.ErrInvalidSupportToken("support token must be 64 hex characters")
	}
	if _, err := hex.DecodeString(rawToken); err != nil {
		return nil, domain.ErrInvalidSupportToken("support token must be hexadecimal")
	}

	now := s.now().UTC()
	session, err := s.sessions.Consume(ctx, hashToken(rawToken), now)
	if err != nil {
		return nil, err
	}

	if auditErr := s.recordAudit(ctx, session.CreatedBy, domain.AuditSupportSessionConsumed, session, session.Reason); auditErr != nil {
		// The token is burned but the exchange must not succeed unaudited.
		return nil, auditErr
	}

	token, expires, err := s.issuer.IssueActingAs(session.CreatedBy, session.SalonID, domain.SupportSessionTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("support session exchanged",
		"session_id", session.ID, "salon_id", session.SalonID, "created_by", session.CreatedBy)
	return &ExchangeResult{Session: session, AccessToken: token, ExpiresAt: expires}, nil
}

// Revoke marks a pending session unusable. The audit trail is preserved.
func (s *SupportSessionService) Revoke(ctx context.Context, id string) error {
	caller, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return domain.ErrUnauthenticated("authentication required")
	}

	if err := s.sessions.Revoke(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.recordAudit(ctx, caller.UserID, domain.AuditSupportSessionRevoked, session, session.Reason); err != nil {
		return err
	}

	s.logger.Info("support session revoked", "session_id", id, "revoked_by", caller.UserID)
	return nil
}

// List returns support sessions, optionally filtered to one salon.
func (s *SupportSessionService) List(ctx context.Context, salonID *string, page domain.PageRequest) ([]domain.SupportSession, int64, error) {
	return s.sessions.List(ctx, salonID, page)
}

// PurgeSettled deletes sessions whose expiry precedes the retention window.
// Audit records are never touched.
func (s *SupportSessionService) PurgeSettled(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-retention)
	count, err := s.sessions.PurgeSettledBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Info("purged settled support sessions", "count", count, "cutoff", cutoff)
	}
	return count, nil
}

func (s *SupportSessionService) recordAudit(ctx context.Context, actorID, action string, session *domain.SupportSession, reason string) error {
	err := s.audit.Insert(ctx, &domain.AuditEntry{
		ActorID:   actorID,
		Action:    action,
		SalonID:   &session.SalonID,
		SessionID: &session.ID,
		Reason:    &reason,
		Status:    "ALLOWED",
	})
	if err != nil {
		s.logger.Error("audit write failed; failing the operation",
			"action", action, "session_id", session.ID, "error", err)
		return fmt.Errorf("audit write: %w", err)
	}
	return nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
