package repository

import (
	"context"
	"database/sql"
	"time"

	"salonhub/internal/domain"
)

type AuditRepo struct {
	db *sql.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

// Insert appends one audit entry. There is no corresponding update or delete:
// the table is append-only through this repository.
func (r *AuditRepo) Insert(ctx context.Context, e *domain.AuditEntry) error {
	if e.ID == "" {
		e.ID = domain.NewID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (id, actor_id, action, salon_id, session_id, reason, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.ActorID, e.Action, nullString(e.SalonID), nullString(e.SessionID),
		nullString(e.Reason), e.Status, e.CreatedAt,
	)
	return err
}

func (r *AuditRepo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	actor := nullString(filter.ActorID)
	action := nullString(filter.Action)
	salon := nullString(filter.SalonID)

	const where = ` WHERE (? IS NULL OR actor_id = ?)
		AND (? IS NULL OR action = ?)
		AND (? IS NULL OR salon_id = ?)`

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log`+where,
		actor, actor, action, action, salon, salon,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, actor_id, action, salon_id, session_id, reason, status, created_at FROM audit_log`+
			where+` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		actor, actor, action, action, salon, salon, filter.Page.Limit(), filter.Page.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var salonID, sessionID, reason sql.NullString
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &salonID, &sessionID, &reason, &e.Status, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		e.SalonID = stringPtr(salonID)
		e.SessionID = stringPtr(sessionID)
		e.Reason = stringPtr(reason)
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}
