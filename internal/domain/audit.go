package domain

import "time"

// Audit actions recorded by the support-session lifecycle and the
// authorization pipeline.
const (
	AuditSupportSessionCreated  = "SUPPORT_SESSION_CREATED"
	AuditSupportSessionConsumed = "SUPPORT_SESSION_CONSUMED"
	AuditSupportSessionRevoked  = "SUPPORT_SESSION_REVOKED"
)

// AuditEntry is a single append-only audit record. Entries are never updated
// or deleted through normal operation.
type AuditEntry struct {
	ID        string
	ActorID   string
	Action    string
	SalonID   *string // target salon, when the action is salon-scoped
	SessionID *string // support session, when the action belongs to one
	Reason    *string
	Status    string // "ALLOWED", "DENIED", "ERROR"
	CreatedAt time.Time
}

// AuditFilter narrows audit listings.
type AuditFilter struct {
	ActorID *string
	Action  *string
	SalonID *string
	Page    PageRequest
}
