package domain

import "time"

// Appointment statuses. Transitions are linear: booked -> confirmed ->
// completed. Any status except completed may move to cancelled.
const (
	AppointmentBooked    = "BOOKED"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment is a salon-scoped booking.
type Appointment struct {
	ID         string
	SalonID    string
	StylistID  string
	ClientName string
	Service    string
	StartsAt   time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateAppointmentRequest holds parameters for booking an appointment.
type CreateAppointmentRequest struct {
	SalonID    string
	StylistID  string
	ClientName string
	Service    string
	StartsAt   time.Time
}

// Validate checks that the request is well-formed.
func (r *CreateAppointmentRequest) Validate() error {
	if r.SalonID == "" {
		return ErrValidation("salon_id is required")
	}
	if r.StylistID == "" {
		return ErrValidation("stylist_id is required")
	}
	if r.ClientName == "" {
		return ErrValidation("client_name is required")
	}
	if r.Service == "" {
		return ErrValidation("service is required")
	}
	if r.StartsAt.IsZero() {
		return ErrValidation("starts_at is required")
	}
	return nil
}

// CanTransition reports whether an appointment may move from one status to
// another.
func CanTransition(from, to string) bool {
	switch {
	case from == AppointmentBooked && to == AppointmentConfirmed:
		return true
	case from == AppointmentConfirmed && to == AppointmentCompleted:
		return true
	case to == AppointmentCancelled && from != AppointmentCompleted && from != AppointmentCancelled:
		return true
	}
	return false
}
