package handler

import (
	"context"
	"net/http"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/dto"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Summarize(ctx context.Context, period domain.Period, search string) (*usecase.Summary, error)
}

// InsightsService provides the latest generated summary text.
type InsightsService interface {
	Latest() string
}

// ReportHandler serves the dashboard and insights views.
type ReportHandler struct {
	reportUC   ReportService
	insightsUC InsightsService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService, insightsUC InsightsService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, insightsUC: insightsUC}
}

// Dashboard returns the full derived snapshot for the selected
// period: totals, monthly series, contributions and insights.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	summary, err := h.reportUC.Summarize(r.Context(), period, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromSummary(summary, h.insightsUC.Latest()))
}

// Insights returns the current insights text on its own.
func (h *ReportHandler) Insights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.InsightsResponse{Insights: h.insightsUC.Latest()})
}
