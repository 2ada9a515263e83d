package usecase

import (
	"context"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// AuditUseCase exposes the read-only audit trail.
type AuditUseCase struct {
	auditRepo AuditRepository
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(auditRepo AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ListRecords returns the audit trail, newest first.
func (uc *AuditUseCase) ListRecords(ctx context.Context) ([]*domain.AuditRecord, error) {
	return uc.auditRepo.List(ctx)
}
