package domain

import "context"

type identityKey struct{}

// Identity carries the verified claims of the calling staff member through
// the request context. It is derived exactly once per request by the
// authentication middleware and is read-only afterwards.
type Identity struct {
	UserID  string
	Role    Role
	SalonID string
	// ActingSalonID is set only on credentials minted through a delegated
	// support session. It scopes a SUPER_ADMIN to a single salon.
	ActingSalonID *string
}

// EffectiveSalonID returns the salon the caller is entitled to act on:
// the acting-as salon during a support session, the home salon otherwise.
func (id Identity) EffectiveSalonID() string {
	if id.ActingSalonID != nil {
		return *id.ActingSalonID
	}
	return id.SalonID
}

// CheckSalonAccess enforces tenant isolation against the owning salon of a
// resource. A SUPER_ADMIN passes only through an acting-as claim; a bare
// SUPER_ADMIN credential is still tenant-checked so that cross-salon access
// never happens outside an audited support session.
func (id Identity) CheckSalonAccess(resourceSalonID string) error {
	if resourceSalonID == "" {
		return ErrForbiddenTenant("resource has no owning salon")
	}
	if id.EffectiveSalonID() == resourceSalonID {
		return nil
	}
	return ErrForbiddenTenant("salon %s is outside the caller's scope", resourceSalonID)
}

// WithIdentity stores an Identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the Identity from the context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
