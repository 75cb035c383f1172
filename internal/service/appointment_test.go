package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonhub/internal/domain"
	"salonhub/internal/testutil"
)

func ownerContext(salonID string) context.Context {
	return domain.WithIdentity(context.Background(), domain.Identity{
		UserID: "u-1", Role: domain.RoleOwner, SalonID: salonID,
	})
}

func staffInSalon(salonID string) *testutil.MockStaffRepo {
	return &testutil.MockStaffRepo{
		GetByIDFn: func(_ context.Context, id string) (*domain.Staff, error) {
			return &domain.Staff{ID: id, SalonID: salonID, Role: domain.RoleStylist}, nil
		},
	}
}

func TestAppointmentService_Book(t *testing.T) {
	appointments := &testutil.MockAppointmentRepo{
		CreateFn: func(_ context.Context, a *domain.Appointment) error {
			a.ID = "a-1"
			return nil
		},
	}
	svc := NewAppointmentService(appointments, staffInSalon("s-1"))

	appt, err := svc.Book(ownerContext("s-1"), domain.CreateAppointmentRequest{
		SalonID: "s-1", StylistID: "st-1", ClientName: "Ada", Service: "cut",
		StartsAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentBooked, appt.Status)
	assert.Equal(t, "s-1", appt.SalonID)
}

func TestAppointmentService_Book_CrossSalonDenied(t *testing.T) {
	svc := NewAppointmentService(&testutil.MockAppointmentRepo{}, staffInSalon("s-2"))

	_, err := svc.Book(ownerContext("s-1"), domain.CreateAppointmentRequest{
		SalonID: "s-2", StylistID: "st-1", ClientName: "Ada", Service: "cut",
		StartsAt: time.Now().Add(time.Hour),
	})
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.KindForbiddenTenant, authErr.Kind)
}

func TestAppointmentService_Book_StylistFromOtherSalon(t *testing.T) {
	svc := NewAppointmentService(&testutil.MockAppointmentRepo{}, staffInSalon("s-2"))

	_, err := svc.Book(ownerContext("s-1"), domain.CreateAppointmentRequest{
		SalonID: "s-1", StylistID: "st-1", ClientName: "Ada", Service: "cut",
		StartsAt: time.Now().Add(time.Hour),
	})
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestAppointmentService_Get_ChecksOwningSalon(t *testing.T) {
	appointments := &testutil.MockAppointmentRepo{
		GetByIDFn: func(_ context.Context, id string) (*domain.Appointment, error) {
			return &domain.Appointment{ID: id, SalonID: "s-2", Status: domain.AppointmentBooked}, nil
		},
	}
	svc := NewAppointmentService(appointments, &testutil.MockStaffRepo{})

	// The row belongs to another salon: a guessed ID must not leak it.
	_, err := svc.Get(ownerContext("s-1"), "a-9")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.KindForbiddenTenant, authErr.Kind)
}

func TestAppointmentService_UpdateStatus_InvalidTransition(t *testing.T) {
	appointments := &testutil.MockAppointmentRepo{
		GetByIDFn: func(_ context.Context, id string) (*domain.Appointment, error) {
			return &domain.Appointment{ID: id, SalonID: "s-1", Status: domain.AppointmentCompleted}, nil
		},
	}
	svc := NewAppointmentService(appointments, &testutil.MockStaffRepo{})

	_, err := svc.UpdateStatus(ownerContext("s-1"), "a-1", domain.AppointmentCancelled)
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	appointments := &testutil.MockAppointmentRepo{
		GetByIDFn: func(_ context.Context, id string) (*domain.Appointment, error) {
			return &domain.Appointment{ID: id, SalonID: "s-1", Status: domain.AppointmentBooked}, nil
		},
		UpdateStatusFn: func(_ context.Context, _, _ string) error { return nil },
	}
	svc := NewAppointmentService(appointments, &testutil.MockStaffRepo{})

	appt, err := svc.UpdateStatus(ownerContext("s-1"), "a-1", domain.AppointmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentConfirmed, appt.Status)
}

func TestAppointmentService_RequiresIdentity(t *testing.T) {
	svc := NewAppointmentService(&testutil.MockAppointmentRepo{}, &testutil.MockStaffRepo{})

	_, err := svc.Get(context.Background(), "a-1")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.KindUnauthenticated, authErr.Kind)
}
