// Package service implements the business operations of the salon platform.
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"salonhub/internal/domain"
)

// TokenIssuer mints HS256 credentials. It signs both staff credentials (dev
// mode and tests) and the acting-as credentials produced by support-session
// exchange; an external IdP can replace the former but never the latter.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer with the given signing secret and default
// credential lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// IssueStaff mints a credential for a staff member with the issuer's default
// lifetime.
func (i *TokenIssuer) IssueStaff(s *domain.Staff) (string, time.Time, error) {
	return i.sign(s.ID, s.Role, s.SalonID, nil, i.ttl)
}

// IssueActingAs mints a SUPER_ADMIN credential scoped to one salon through an
// acting-as claim. Used only by support-session exchange.
func (i *TokenIssuer) IssueActingAs(adminID, salonID string, ttl time.Duration) (string, time.Time, error) {
	return i.sign(adminID, domain.RoleSuperAdmin, "", &salonID, ttl)
}

func (i *TokenIssuer) sign(subject string, role domain.Role, salonID string, actingSalonID *string, ttl time.Duration) (string, time.Time, error) {
	now := i.now()
	expires := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expires.Unix(),
	}
	if salonID != "" {
		claims["salon_id"] = salonID
	}
	if actingSalonID != nil {
		claims["acting_salon_id"] = *actingSalonID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}
