package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"salonhub/internal/domain"
)

type SupportSessionRepo struct {
	db *sql.DB
}

func NewSupportSessionRepo(db *sql.DB) *SupportSessionRepo {
	return &SupportSessionRepo{db: db}
}

func (r *SupportSessionRepo) Create(ctx context.Context, s *domain.SupportSession) error {
	if s.ID == "" {
		s.ID = domain.NewID()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO support_sessions (id, salon_id, created_by, reason, token_hash, issued_at, expires_at, consumed_at, revoked_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.SalonID, s.CreatedBy, s.Reason, s.TokenHash, s.IssuedAt, s.ExpiresAt,
		nullTime(s.ConsumedAt), nullTime(s.RevokedAt),
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict("support session token collision")
	}
	return err
}

const sessionColumns = `id, salon_id, created_by, reason, token_hash, issued_at, expires_at, consumed_at, revoked_at`

func (r *SupportSessionRepo) GetByID(ctx context.Context, id string) (*domain.SupportSession, error) {
	s, err := r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM support_sessions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("support session %s not found", id)
	}
	return s, err
}

func (r *SupportSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SupportSession, error) {
	s, err := r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM support_sessions WHERE token_hash = ?`, tokenHash))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvalidSupportToken("support token is not recognized")
	}
	return s, err
}

// Consume marks the session matching tokenHash as consumed, atomically. The
// eligibility check and the consumed-at mark are a single conditional UPDATE,
// so concurrent exchanges of one token produce exactly one winner. On
// failure the session is re-read to classify the refusal.
func (r *SupportSessionRepo) Consume(ctx context.Context, tokenHash string, now time.Time) (*domain.SupportSession, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE support_sessions SET consumed_at = ?
		 WHERE token_hash = ? AND consumed_at IS NULL AND revoked_at IS NULL AND expires_at > ?`,
		now, tokenHash, now,
	)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return r.GetByTokenHash(ctx, tokenHash)
	}

	s, err := r.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, err
	}
	switch {
	case s.ConsumedAt != nil:
		return nil, domain.ErrAlreadyConsumed("support token was already exchanged at %s", s.ConsumedAt.UTC().Format(time.RFC3339))
	case s.RevokedAt != nil:
		return nil, domain.ErrInvalidSupportToken("support session was revoked")
	case !now.Before(s.ExpiresAt):
		return nil, domain.ErrExpiredSupportToken("support token expired at %s", s.ExpiresAt.UTC().Format(time.RFC3339))
	default:
		return nil, domain.ErrInvalidSupportToken("support token is not exchangeable")
	}
}

// Revoke marks a pending session unusable. Only pending sessions (not yet
// consumed, not yet revoked, not yet expired) can be revoked; anything else
// is a conflict.
func (r *SupportSessionRepo) Revoke(ctx context.Context, id string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE support_sessions SET revoked_at = ?
		 WHERE id = ? AND consumed_at IS NULL AND revoked_at IS NULL AND expires_at > ?`,
		now, id, now,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	s, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch {
	case s.ConsumedAt != nil:
		return domain.ErrConflict("support session %s was already consumed", id)
	case s.RevokedAt != nil:
		return domain.ErrConflict("support session %s was already revoked", id)
	default:
		return domain.ErrConflict("support session %s expired at %s and needs no revocation",
			id, s.ExpiresAt.UTC().Format(time.RFC3339))
	}
}

func (r *SupportSessionRepo) List(ctx context.Context, salonID *string, page domain.PageRequest) ([]domain.SupportSession, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM support_sessions WHERE (? IS NULL OR salon_id = ?)`,
		nullString(salonID), nullString(salonID),
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM support_sessions
		 WHERE (? IS NULL OR salon_id = ?) ORDER BY issued_at DESC LIMIT ? OFFSET ?`,
		nullString(salonID), nullString(salonID), page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var sessions []domain.SupportSession
	for rows.Next() {
		var s domain.SupportSession
		var consumed, revoked sql.NullTime
		if err := rows.Scan(&s.ID, &s.SalonID, &s.CreatedBy, &s.Reason, &s.TokenHash,
			&s.IssuedAt, &s.ExpiresAt, &consumed, &revoked); err != nil {
			return nil, 0, err
		}
		s.ConsumedAt = timePtr(consumed)
		s.RevokedAt = timePtr(revoked)
		sessions = append(sessions, s)
	}
	return sessions, total, rows.Err()
}

func (r *SupportSessionRepo) PurgeSettledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	// Every session is settled once its expiry has passed, whether it was
	// consumed, revoked, or simply never exchanged.
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM support_sessions WHERE expires_at < ?`, cutoff,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SupportSessionRepo) scanOne(row rowScanner) (*domain.SupportSession, error) {
	var s domain.SupportSession
	var consumed, revoked sql.NullTime
	if err := row.Scan(&s.ID, &s.SalonID, &s.CreatedBy, &s.Reason, &s.TokenHash,
		&s.IssuedAt, &s.ExpiresAt, &consumed, &revoked); err != nil {
		return nil, err
	}
	s.ConsumedAt = timePtr(consumed)
	s.RevokedAt = timePtr(revoked)
	return &s, nil
}
