package domain

import "time"

// SupportSessionTTL is the fixed lifetime of an unconsumed support token,
// measured from issuance. Expiry is evaluated by comparing the stored
// issuance time against the clock at consumption; there is no background
// eviction of live sessions.
const SupportSessionTTL = 15 * time.Minute

// SupportSession is a time-boxed, single-use, audited grant that lets a
// SUPER_ADMIN obtain a credential scoped to one salon. The raw token is
// returned once at creation and only its SHA-256 hash is stored.
type SupportSession struct {
	ID         string
	SalonID    string
	CreatedBy  string // staff id of the SUPER_ADMIN who opened the session
	Reason     string
	TokenHash  string
	IssuedAt   time.Time
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	RevokedAt  *time.Time
}

// Pending reports whether the session is still exchangeable at the given time.
func (s *SupportSession) Pending(now time.Time) bool {
	return s.ConsumedAt == nil && s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// CreateSupportSessionRequest holds parameters for opening a support session.
type CreateSupportSessionRequest struct {
	SalonID string
	Reason  string
}

// Validate checks that the request is well-formed. The reason is a
// compliance requirement and must be non-empty.
func (r *CreateSupportSessionRequest) Validate() error {
	if r.SalonID == "" {
		return ErrValidation("salon_id is required")
	}
	if r.Reason == "" {
		return ErrValidation("a non-empty reason is required for support access")
	}
	return nil
}
