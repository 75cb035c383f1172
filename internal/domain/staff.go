package domain

import (
	"strings"
	"time"
)

// Staff is a salon employee and the subject of issued credentials.
type Staff struct {
	ID        string
	SalonID   string
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// CreateStaffRequest holds parameters for adding a staff member to a salon.
type CreateStaffRequest struct {
	SalonID string
	Name    string
	Email   string
	Role    Role
}

// Validate checks that the request is well-formed. SUPER_ADMIN is a platform
// role and is never attached to a salon through this path.
func (r *CreateStaffRequest) Validate() error {
	if r.SalonID == "" {
		return ErrValidation("salon_id is required")
	}
	if r.Name == "" {
		return ErrValidation("staff name is required")
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return ErrValidation("a valid email is required")
	}
	if !r.Role.Valid() {
		return ErrValidation("role must be one of OWNER, MANAGER, RECEPTIONIST, STYLIST")
	}
	if r.Role == RoleSuperAdmin {
		return ErrValidation("SUPER_ADMIN cannot be assigned to salon staff")
	}
	return nil
}
