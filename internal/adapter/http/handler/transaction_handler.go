package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/dto"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/infrastructure/metrics"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/usecase"
)

// LedgerService defines the mutation behavior needed by TransactionHandler.
type LedgerService interface {
	CreateTransaction(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, input usecase.TransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// TransactionFilter defines the period-filtered listing the ledger
// view needs.
type TransactionFilter interface {
	FilterTransactions(ctx context.Context, period domain.Period, search string) ([]*domain.Transaction, error)
	PeriodTotals(transactions []*domain.Transaction) domain.PeriodTotals
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	ledgerUC LedgerService
	reportUC TransactionFilter
	metrics  *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler. m may be nil.
func NewTransactionHandler(ledgerUC LedgerService, reportUC TransactionFilter, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{ledgerUC: ledgerUC, reportUC: reportUC, metrics: m}
}

// List returns the transactions visible for the selected period and
// search term, newest first, with the period totals.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	transactions, err := h.reportUC.FilterTransactions(r.Context(), period, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        int64(len(transactions)),
		Totals:       dto.PeriodTotalsFromDomain(h.reportUC.PeriodTotals(transactions)),
	})
}

// Create creates a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction", err.Error())
		return
	}

	tx, err := h.ledgerUC.CreateTransaction(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create transaction", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.TransactionsCreated.Inc()
		h.metrics.AuditRecordsCreated.WithLabelValues(string(domain.AuditActionCreate), string(domain.AuditEntityTransaction)).Inc()
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// Update replaces the transaction matching the path id. An unknown id
// is answered with 204 and no mutation takes place.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	var req dto.SaveTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction", err.Error())
		return
	}

	tx, err := h.ledgerUC.UpdateTransaction(r.Context(), id, input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update transaction", err.Error())
		return
	}
	if tx == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if h.metrics != nil {
		h.metrics.TransactionsUpdated.Inc()
		h.metrics.AuditRecordsCreated.WithLabelValues(string(domain.AuditActionUpdate), string(domain.AuditEntityTransaction)).Inc()
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// Delete removes the transaction matching the path id. Unknown ids
// are a no-op; the response is 204 either way.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	if err := h.ledgerUC.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete transaction", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.TransactionsDeleted.Inc()
	}

	w.WriteHeader(http.StatusNoContent)
}
