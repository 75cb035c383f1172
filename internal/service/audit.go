package service

import (
	"context"

	"salonhub/internal/domain"
)

// AuditService exposes read access to the audit trail.
type AuditService struct {
	audit domain.AuditRepository
}

// NewAuditService creates an AuditService.
func NewAuditService(audit domain.AuditRepository) *AuditService {
	return &AuditService{audit: audit}
}

// List returns audit entries matching the filter, newest first.
func (s *AuditService) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error) {
	return s.audit.List(ctx, filter)
}
