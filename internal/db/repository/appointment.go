package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"salonhub/internal/domain"
)

type AppointmentRepo struct {
	db *sql.DB
}

func NewAppointmentRepo(db *sql.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

func (r *AppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	if a.ID == "" {
		a.ID = domain.NewID()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = a.CreatedAt
	if a.Status == "" {
		a.Status = domain.AppointmentBooked
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO appointments (id, salon_id, stylist_id, client_name, service, starts_at, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SalonID, a.StylistID, a.ClientName, a.Service, a.StartsAt, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.QueryRowContext(ctx,
		`SELECT id, salon_id, stylist_id, client_name, service, starts_at, status, created_at, updated_at
		 FROM appointments WHERE id = ?`, id,
	).Scan(&a.ID, &a.SalonID, &a.StylistID, &a.ClientName, &a.Service, &a.StartsAt, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("appointment %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepo) ListBySalon(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Appointment, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments WHERE salon_id = ?`, salonID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, salon_id, stylist_id, client_name, service, starts_at, status, created_at, updated_at
		 FROM appointments WHERE salon_id = ? ORDER BY starts_at LIMIT ? OFFSET ?`,
		salonID, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var appts []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.SalonID, &a.StylistID, &a.ClientName, &a.Service, &a.StartsAt, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		appts = append(appts, a)
	}
	return appts, total, rows.Err()
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("appointment %s not found", id)
	}
	return nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("appointment %s not found", id)
	}
	return nil
}
