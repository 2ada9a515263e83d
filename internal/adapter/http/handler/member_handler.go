package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/dto"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/infrastructure/metrics"
)

// MemberService defines the behavior needed by MemberHandler.
type MemberService interface {
	CreateMember(ctx context.Context, name, email string) (*domain.Member, error)
}

// ContributionLister provides per-member all-time contribution totals.
type ContributionLister interface {
	MemberContributions(ctx context.Context) ([]*domain.MemberContribution, error)
}

// MemberHandler handles member-related HTTP requests.
type MemberHandler struct {
	memberUC MemberService
	reportUC ContributionLister
	metrics  *metrics.Metrics
}

// NewMemberHandler creates a new MemberHandler. m may be nil.
func NewMemberHandler(memberUC MemberService, reportUC ContributionLister, m *metrics.Metrics) *MemberHandler {
	return &MemberHandler{memberUC: memberUC, reportUC: reportUC, metrics: m}
}

// List returns every member with its all-time contribution total,
// ranked by total descending.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	contributions, err := h.reportUC.MemberContributions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list members", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListMembersResponse{
		Members: dto.ContributionsFromDomain(contributions),
		Total:   int64(len(contributions)),
	})
}

// Create registers a new member.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	member, err := h.memberUC.CreateMember(r.Context(), req.Name, req.Email)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create member", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.MembersCreated.Inc()
		h.metrics.AuditRecordsCreated.WithLabelValues(string(domain.AuditActionCreate), string(domain.AuditEntityMember)).Inc()
	}

	writeJSON(w, http.StatusCreated, dto.MemberFromDomain(member))
}
