package service

import (
	"context"

	"salonhub/internal/domain"
)

// AppointmentService manages salon-scoped bookings. Tenant isolation is
// enforced twice: by the salon-scope middleware on the URL, and here against
// the owning salon stored on each row, so a caller can never reach another
// salon's appointment through a guessed ID.
type AppointmentService struct {
	appointments domain.AppointmentRepository
	staff        domain.StaffRepository
}

// NewAppointmentService creates an AppointmentService.
func NewAppointmentService(appointments domain.AppointmentRepository, staff domain.StaffRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments, staff: staff}
}

// Book creates an appointment in the caller's salon.
func (s *AppointmentService) Book(ctx context.Context, req domain.CreateAppointmentRequest) (*domain.Appointment, error) {
	caller, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated("authentication required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := caller.CheckSalonAccess(req.SalonID); err != nil {
		return nil, err
	}

	stylist, err := s.staff.GetByID(ctx, req.StylistID)
	if err != nil {
		return nil, err
	}
	if stylist.SalonID != req.SalonID {
		return nil, domain.ErrValidation("stylist %s does not work at salon %s", req.StylistID, req.SalonID)
	}

	appt := &domain.Appointment{
		SalonID:    req.SalonID,
		StylistID:  req.StylistID,
		ClientName: req.ClientName,
		Service:    req.Service,
		StartsAt:   req.StartsAt,
		Status:     domain.AppointmentBooked,
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Get returns one appointment after checking the caller may see its salon.
func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	caller, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated("authentication required")
	}
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := caller.CheckSalonAccess(appt.SalonID); err != nil {
		return nil, err
	}
	return appt, nil
}

// ListBySalon returns a salon's appointments.
func (s *AppointmentService) ListBySalon(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Appointment, int64, error) {
	caller, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthenticated("authentication required")
	}
	if err := caller.CheckSalonAccess(salonID); err != nil {
		return nil, 0, err
	}
	return s.appointments.ListBySalon(ctx, salonID, page)
}

// UpdateStatus advances an appointment through its lifecycle.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id, status string) (*domain.Appointment, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(appt.Status, status) {
		return nil, domain.ErrValidation("cannot move appointment from %s to %s", appt.Status, status)
	}
	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appt.Status = status
	return appt, nil
}

// Delete removes an appointment.
func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.appointments.Delete(ctx, id)
}
