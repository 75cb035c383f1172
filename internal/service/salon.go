package service

import (
	"context"

	"salonhub/internal/domain"
)

// SalonService manages salons and their staff rosters.
type SalonService struct {
	salons domain.SalonRepository
	staff  domain.StaffRepository
}

// NewSalonService creates a SalonService.
func NewSalonService(salons domain.SalonRepository, staff domain.StaffRepository) *SalonService {
	return &SalonService{salons: salons, staff: staff}
}

// Get returns one salon after a tenant check.
func (s *SalonService) Get(ctx context.Context, id string) (*domain.Salon, error) {
	caller, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated("authentication required")
	}
	if err := caller.CheckSalonAccess(id); err != nil {
		return nil, err
	}
	return s.salons.GetByID(ctx, id)
}

// AddStaff hires a staff member into the caller's salon.
func (s *SalonService) AddStaff(ctx context.Context, req domain.CreateStaffRequest) (*domain.Staff, error) {
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
	if _, err := s.salons.GetByID(ctx, req.SalonID); err != nil {
		return nil, err
	}

	member := &domain.Staff{
		SalonID: req.SalonID,
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
	}
	if err := s.staff.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// ListStaff returns a salon's roster.
func (s *SalonService) ListStaff(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Staff, int64, error) {
	caller, ok := domain.IdentityFromContext(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthenticated("authentication required")
	}
	if err := caller.CheckSalonAccess(salonID); err != nil {
		return nil, 0, err
	}
	return s.staff.ListBySalon(ctx, salonID, page)
}
