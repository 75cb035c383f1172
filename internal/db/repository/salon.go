package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"salonhub/internal/domain"
)

type SalonRepo struct {
	db *sql.DB
}

func NewSalonRepo(db *sql.DB) *SalonRepo {
	return &SalonRepo{db: db}
}

func (r *SalonRepo) Create(ctx context.Context, s *domain.Salon) error {
	if s.ID == "" {
		s.ID = domain.NewID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO salons (id, name, timezone, active, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Timezone, s.Active, s.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict("salon %q already exists", s.Name)
	}
	return err
}

func (r *SalonRepo) GetByID(ctx context.Context, id string) (*domain.Salon, error) {
	return r.get(ctx, `SELECT id, name, timezone, active, created_at FROM salons WHERE id = ?`, id)
}

func (r *SalonRepo) GetByName(ctx context.Context, name string) (*domain.Salon, error) {
	return r.get(ctx, `SELECT id, name, timezone, active, created_at FROM salons WHERE name = ?`, name)
}

func (r *SalonRepo) get(ctx context.Context, query, arg string) (*domain.Salon, error) {
	var s domain.Salon
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&s.ID, &s.Name, &s.Timezone, &s.Active, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("salon %s not found", arg)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SalonRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Salon, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM salons`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, timezone, active, created_at FROM salons ORDER BY created_at LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var salons []domain.Salon
	for rows.Next() {
		var s domain.Salon
		if err := rows.Scan(&s.ID, &s.Name, &s.Timezone, &s.Active, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		salons = append(salons, s)
	}
	return salons, total, rows.Err()
}
