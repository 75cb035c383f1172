package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"salonhub/internal/domain"
)

// seedFile is the YAML shape for bootstrap data.
type seedFile struct {
	Salons []struct {
		Name     string `yaml:"name"`
		Timezone string `yaml:"timezone"`
		Staff    []struct {
			Name  string `yaml:"name"`
			Email string `yaml:"email"`
			Role  string `yaml:"role"`
		} `yaml:"staff"`
	} `yaml:"salons"`
}

// SeedFromFile loads salons and staff from a YAML file. Idempotent: salons
// and staff that already exist (by name/email) are left untouched.
func SeedFromFile(ctx context.Context, path string, salons domain.SalonRepository, staff domain.StaffRepository, logger *slog.Logger) error {
	raw, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	created := 0
	for _, sv := range seed.Salons {
		salon, err := salons.GetByName(ctx, sv.Name)
		var notFound *domain.NotFoundError
		switch {
		case err == nil:
			// already seeded
		case errors.As(err, &notFound):
			req := domain.CreateSalonRequest{Name: sv.Name, Timezone: sv.Timezone}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("salon %q: %w", sv.Name, err)
			}
			salon = &domain.Salon{Name: req.Name, Timezone: req.Timezone, Active: true}
			if err := salons.Create(ctx, salon); err != nil {
				return fmt.Errorf("create salon %q: %w", sv.Name, err)
			}
			created++
		default:
			return err
		}

		for _, mv := range sv.Staff {
			if _, err := staff.GetByEmail(ctx, mv.Email); err == nil {
				continue
			} else if !errors.As(err, &notFound) {
				return err
			}
			req := domain.CreateStaffRequest{
				SalonID: salon.ID,
				Name:    mv.Name,
				Email:   mv.Email,
				Role:    domain.Role(mv.Role),
			}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("staff %q: %w", mv.Email, err)
			}
			member := &domain.Staff{SalonID: req.SalonID, Name: req.Name, Email: req.Email, Role: req.Role}
			if err := staff.Create(ctx, member); err != nil {
				return fmt.Errorf("create staff %q: %w", mv.Email, err)
			}
			created++
		}
	}

	if created > 0 {
		logger.Info("seed data loaded", "path", path, "created", created)
	}
	return nil
}
