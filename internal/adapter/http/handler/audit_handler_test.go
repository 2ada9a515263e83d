package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/dto"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

type stubAuditService struct {
	records []*domain.AuditRecord
	err     error
}

func (s *stubAuditService) ListRecords(ctx context.Context) ([]*domain.AuditRecord, error) {
	return s.records, s.err
}

func TestAuditHandler_List(t *testing.T) {
	svc := &stubAuditService{
		records: []*domain.AuditRecord{
			{
				ID:        "audit-2",
				Timestamp: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				Action:    domain.AuditActionUpdate,
				Entity:    domain.AuditEntityTransaction,
				Details:   "Updated transaction: January dues",
			},
			{
				ID:        "audit-1",
				Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Action:    domain.AuditActionCreate,
				Entity:    domain.AuditEntityTransaction,
				Details:   "Added transaction: January dues (Rs.1000)",
			},
		},
	}
	h := NewAuditHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/audit", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Records []*dto.AuditRecordResponse `json:"records"`
		Total   int                        `json:"total"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected total 2, got %d", resp.Total)
	}
	// The trail stays in store order: newest first.
	if resp.Records[0].ID != "audit-2" || resp.Records[1].ID != "audit-1" {
		t.Errorf("unexpected order: %s, %s", resp.Records[0].ID, resp.Records[1].ID)
	}
	if resp.Records[1].Details != "Added transaction: January dues (Rs.1000)" {
		t.Errorf("unexpected details %q", resp.Records[1].Details)
	}
}
