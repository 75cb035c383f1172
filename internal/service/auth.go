package service

import (
	"context"
	"time"

	"salonhub/internal/domain"
)

// AuthService issues development-mode credentials for staff by email. The
// route exposing it is registered only outside production, where an external
// identity provider issues credentials instead.
type AuthService struct {
	staff  domain.StaffRepository
	issuer *TokenIssuer
}

// NewAuthService creates an AuthService.
func NewAuthService(staff domain.StaffRepository, issuer *TokenIssuer) *AuthService {
	return &AuthService{staff: staff, issuer: issuer}
}

// IssueForEmail mints a credential for the staff member with the given email.
func (s *AuthService) IssueForEmail(ctx context.Context, email string) (string, time.Time, error) {
	if email == "" {
		return "", time.Time{}, domain.ErrValidation("email is required")
	}
	member, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, err
	}
	return s.issuer.IssueStaff(member)
}
