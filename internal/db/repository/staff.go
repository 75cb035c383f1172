package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"salonhub/internal/domain"
)

type StaffRepo struct {
	db *sql.DB
}

func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

func (r *StaffRepo) Create(ctx context.Context, s *domain.Staff) error {
	if s.ID == "" {
		s.ID = domain.NewID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO staff (id, salon_id, name, email, role, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.SalonID, s.Name, s.Email, string(s.Role), s.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict("staff with email %q already exists", s.Email)
	}
	return err
}

func (r *StaffRepo) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	return r.get(ctx, `SELECT id, salon_id, name, email, role, created_at FROM staff WHERE id = ?`, id)
}

func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	return r.get(ctx, `SELECT id, salon_id, name, email, role, created_at FROM staff WHERE email = ?`, email)
}

func (r *StaffRepo) get(ctx context.Context, query, arg string) (*domain.Staff, error) {
	var s domain.Staff
	var role string
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&s.ID, &s.SalonID, &s.Name, &s.Email, &role, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("staff %s not found", arg)
	}
	if err != nil {
		return nil, err
	}
	s.Role = domain.Role(role)
	return &s, nil
}

func (r *StaffRepo) ListBySalon(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Staff, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff WHERE salon_id = ?`, salonID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, salon_id, name, email, role, created_at FROM staff
		 WHERE salon_id = ? ORDER BY created_at LIMIT ? OFFSET ?`,
		salonID, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []domain.Staff
	for rows.Next() {
		var s domain.Staff
		var role string
		if err := rows.Scan(&s.ID, &s.SalonID, &s.Name, &s.Email, &role, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		s.Role = domain.Role(role)
		members = append(members, s)
	}
	return members, total, rows.Err()
}
