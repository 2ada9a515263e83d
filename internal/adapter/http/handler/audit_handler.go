package handler

import (
	"context"
	"net/http"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/dto"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// AuditService defines the behavior needed by AuditHandler.
type AuditService interface {
	ListRecords(ctx context.Context) ([]*domain.AuditRecord, error)
}

// AuditHandler serves the read-only audit trail.
type AuditHandler struct {
	auditUC AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditUC AuditService) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// List returns the audit trail, newest first.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.auditUC.ListRecords(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list audit records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"records": dto.AuditRecordsFromDomain(records),
		"total":   len(records),
	})
}
