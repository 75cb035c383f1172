// Package testutil provides shared mock implementations of domain interfaces
// for use in tests across the codebase. This follows the Go convention of a
// shared test utility package (like net/http/httptest).
package testutil

import (
	"context"
	"time"

	"salonhub/internal/domain"
)

// === Audit Repository Mock ===

// MockAuditRepo implements domain.AuditRepository for testing.
type MockAuditRepo struct {
	InsertFn func(ctx context.Context, e *domain.AuditEntry) error
	ListFn   func(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error)
	Entries  []*domain.AuditEntry // collected entries for assertions
}

func (m *MockAuditRepo) Insert(ctx context.Context, e *domain.AuditEntry) error {
	if m.InsertFn != nil {
		if err := m.InsertFn(ctx, e); err != nil {
			return err
		}
	}
	m.Entries = append(m.Entries, e)
	return nil
}

func (m *MockAuditRepo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	panic("unexpected call to MockAuditRepo.List")
}

// LastEntry returns the last collected audit entry, or nil if none.
func (m *MockAuditRepo) LastEntry() *domain.AuditEntry {
	if len(m.Entries) == 0 {
		return nil
	}
	return m.Entries[len(m.Entries)-1]
}

// === Salon Repository Mock ===

// MockSalonRepo implements domain.SalonRepository for testing.
type MockSalonRepo struct {
	CreateFn    func(ctx context.Context, s *domain.Salon) error
	GetByIDFn   func(ctx context.Context, id string) (*domain.Salon, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Salon, error)
	ListFn      func(ctx context.Context, page domain.PageRequest) ([]domain.Salon, int64, error)
}

func (m *MockSalonRepo) Create(ctx context.Context, s *domain.Salon) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	panic("unexpected call to MockSalonRepo.Create")
}

func (m *MockSalonRepo) GetByID(ctx context.Context, id string) (*domain.Salon, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	panic("unexpected call to MockSalonRepo.GetByID")
}

func (m *MockSalonRepo) GetByName(ctx context.Context, name string) (*domain.Salon, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	panic("unexpected call to MockSalonRepo.GetByName")
}

func (m *MockSalonRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Salon, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	panic("unexpected call to MockSalonRepo.List")
}

// === Staff Repository Mock ===

// MockStaffRepo implements domain.StaffRepository for testing.
type MockStaffRepo struct {
	CreateFn      func(ctx context.Context, s *domain.Staff) error
	GetByIDFn     func(ctx context.Context, id string) (*domain.Staff, error)
	GetByEmailFn  func(ctx context.Context, email string) (*domain.Staff, error)
	ListBySalonFn func(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Staff, int64, error)
}

func (m *MockStaffRepo) Create(ctx context.Context, s *domain.Staff) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	panic("unexpected call to MockStaffRepo.Create")
}

func (m *MockStaffRepo) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	panic("unexpected call to MockStaffRepo.GetByID")
}

func (m *MockStaffRepo) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	panic("unexpected call to MockStaffRepo.GetByEmail")
}

func (m *MockStaffRepo) ListBySalon(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Staff, int64, error) {
	if m.ListBySalonFn != nil {
		return m.ListBySalonFn(ctx, salonID, page)
	}
	panic("unexpected call to MockStaffRepo.ListBySalon")
}

// === Appointment Repository Mock ===

// MockAppointmentRepo implements domain.AppointmentRepository for testing.
type MockAppointmentRepo struct {
	CreateFn       func(ctx context.Context, a *domain.Appointment) error
	GetByIDFn      func(ctx context.Context, id string) (*domain.Appointment, error)
	ListBySalonFn  func(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Appointment, int64, error)
	UpdateStatusFn func(ctx context.Context, id, status string) error
	DeleteFn       func(ctx context.Context, id string) error
}

func (m *MockAppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	panic("unexpected call to MockAppointmentRepo.Create")
}

func (m *MockAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	panic("unexpected call to MockAppointmentRepo.GetByID")
}

func (m *MockAppointmentRepo) ListBySalon(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Appointment, int64, error) {
	if m.ListBySalonFn != nil {
		return m.ListBySalonFn(ctx, salonID, page)
	}
	panic("unexpected call to MockAppointmentRepo.ListBySalon")
}

func (m *MockAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	panic("unexpected call to MockAppointmentRepo.UpdateStatus")
}

func (m *MockAppointmentRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	panic("unexpected call to MockAppointmentRepo.Delete")
}

// === Support Session Repository Mock ===

// MockSupportSessionRepo implements domain.SupportSessionRepository for testing.
type MockSupportSessionRepo struct {
	CreateFn             func(ctx context.Context, s *domain.SupportSession) error
	GetByIDFn            func(ctx context.Context, id string) (*domain.SupportSession, error)
	GetByTokenHashFn     func(ctx context.Context, tokenHash string) (*domain.SupportSession, error)
	ConsumeFn            func(ctx context.Context, tokenHash string, now time.Time) (*domain.SupportSession, error)
	RevokeFn             func(ctx context.Context, id string, now time.Time) error
	ListFn               func(ctx context.Context, salonID *string, page domain.PageRequest) ([]domain.SupportSession, int64, error)
	PurgeSettledBeforeFn func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockSupportSessionRepo) Create(ctx context.Context, s *domain.SupportSession) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	panic("unexpected call to MockSupportSessionRepo.Create")
}

func (m *MockSupportSessionRepo) GetByID(ctx context.Context, id string) (*domain.SupportSession, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	panic("unexpected call to MockSupportSessionRepo.GetByID")
}

func (m *MockSupportSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SupportSession, error) {
	if m.GetByTokenHashFn != nil {
		return m.GetByTokenHashFn(ctx, tokenHash)
	}
	panic("unexpected call to MockSupportSessionRepo.GetByTokenHash")
}

func (m *MockSupportSessionRepo) Consume(ctx context.Context, tokenHash string, now time.Time) (*domain.SupportSession, error) {
	if m.ConsumeFn != nil {
		return m.ConsumeFn(ctx, tokenHash, now)
	}
	panic("unexpected call to MockSupportSessionRepo.Consume")
}

func (m *MockSupportSessionRepo) Revoke(ctx context.Context, id string, now time.Time) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, id, now)
	}
	panic("unexpected call to MockSupportSessionRepo.Revoke")
}

func (m *MockSupportSessionRepo) List(ctx context.Context, salonID *string, page domain.PageRequest) ([]domain.SupportSession, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, salonID, page)
	}
	panic("unexpected call to MockSupportSessionRepo.List")
}

func (m *MockSupportSessionRepo) PurgeSettledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.PurgeSettledBeforeFn != nil {
		return m.PurgeSettledBeforeFn(ctx, cutoff)
	}
	panic("unexpected call to MockSupportSessionRepo.PurgeSettledBefore")
}
