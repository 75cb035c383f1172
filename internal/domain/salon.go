package domain

import "time"

// Salon is the tenant boundary: every resource in the system belongs to
// exactly one salon.
type Salon struct {
	ID        string
	Name      string
	Timezone  string
	Active    bool
	CreatedAt time.Time
}

// CreateSalonRequest holds parameters for registering a new salon.
type CreateSalonRequest struct {
	Name     string
	Timezone string
}

// Validate checks that the request is well-formed.
func (r *CreateSalonRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("salon name is required")
	}
	if r.Timezone == "" {
		r.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return ErrValidation("unknown timezone %q", r.Timezone)
	}
	return nil
}
