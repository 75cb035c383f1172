package domain

import (
	"context"
	"time"
)

// SalonRepository persists salons.
type SalonRepository interface {
	Create(ctx context.Context, s *Salon) error
	GetByID(ctx context.Context, id string) (*Salon, error)
	GetByName(ctx context.Context, name string) (*Salon, error)
	List(ctx context.Context, page PageRequest) ([]Salon, int64, error)
}

// StaffRepository persists salon staff.
type StaffRepository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id string) (*Staff, error)
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	ListBySalon(ctx context.Context, salonID string, page PageRequest) ([]Staff, int64, error)
}

// AppointmentRepository persists appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	ListBySalon(ctx context.Context, salonID string, page PageRequest) ([]Appointment, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// SupportSessionRepository persists delegated support sessions.
//
// Consume must be atomic: the not-consumed/not-revoked check and the
// consumed-at mark happen as one indivisible operation so that concurrent
// exchanges of the same token yield exactly one winner.
type SupportSessionRepository interface {
	Create(ctx context.Context, s *SupportSession) error
	GetByID(ctx context.Context, id string) (*SupportSession, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*SupportSession, error)
	Consume(ctx context.Context, tokenHash string, now time.Time) (*SupportSession, error)
	Revoke(ctx context.Context, id string, now time.Time) error
	List(ctx context.Context, salonID *string, page PageRequest) ([]SupportSession, int64, error)
	// PurgeSettledBefore deletes sessions that are consumed, revoked, or
	// long expired and whose expiry precedes the cutoff. Audit records are
	// untouched.
	PurgeSettledBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditRepository appends and lists audit entries. There is no update or
// delete: the audit trail is immutable through normal operation.
type AuditRepository interface {
	Insert(ctx context.Context, e *AuditEntry) error
	List(ctx context.Context, filter AuditFilter) ([]AuditEntry, int64, error)
}
