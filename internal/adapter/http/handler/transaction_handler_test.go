package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/dto"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/usecase"
)

type stubLedgerService struct {
	createFunc func(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error)
	updateFunc func(ctx context.Context, id string, input usecase.TransactionInput) (*domain.Transaction, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (s *stubLedgerService) CreateTransaction(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error) {
	return s.createFunc(ctx, input)
}

func (s *stubLedgerService) UpdateTransaction(ctx context.Context, id string, input usecase.TransactionInput) (*domain.Transaction, error) {
	return s.updateFunc(ctx, id, input)
}

func (s *stubLedgerService) DeleteTransaction(ctx context.Context, id string) error {
	return s.deleteFunc(ctx, id)
}

type stubTransactionFilter struct {
	transactions []*domain.Transaction
	err          error
}

func (s *stubTransactionFilter) FilterTransactions(ctx context.Context, period domain.Period, search string) ([]*domain.Transaction, error) {
	return s.transactions, s.err
}

func (s *stubTransactionFilter) PeriodTotals(transactions []*domain.Transaction) domain.PeriodTotals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range transactions {
		if tx.IsIncome() {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}
	return domain.PeriodTotals{Income: income, Expense: expense, Balance: income.Sub(expense)}
}

func transactionRouter(h *TransactionHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/transactions", h.List)
	r.Post("/transactions", h.Create)
	r.Put("/transactions/{id}", h.Update)
	r.Delete("/transactions/{id}", h.Delete)
	return r
}

func sampleTransaction() *domain.Transaction {
	return &domain.Transaction{
		ID:          "tx-1",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Type:        domain.TransactionTypeIncome,
		Amount:      decimal.NewFromInt(1000),
		Description: "January dues",
		Category:    "Dues",
		MemberID:    "member-1",
	}
}

func TestTransactionHandler_List(t *testing.T) {
	filter := &stubTransactionFilter{transactions: []*domain.Transaction{sampleTransaction()}}
	h := NewTransactionHandler(&stubLedgerService{}, filter, nil)

	req := httptest.NewRequest(http.MethodGet, "/transactions?year=2024&month=1", nil)
	rec := httptest.NewRecorder()
	transactionRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListTransactionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected total 1, got %d", resp.Total)
	}
	if !resp.Totals.Income.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected income 1000, got %s", resp.Totals.Income)
	}
	if resp.Transactions[0].Date != "2024-01-10" {
		t.Errorf("unexpected wire date %q", resp.Transactions[0].Date)
	}
}

func TestTransactionHandler_List_InvalidMonth(t *testing.T) {
	h := NewTransactionHandler(&stubLedgerService{}, &stubTransactionFilter{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/transactions?month=13", nil)
	rec := httptest.NewRecorder()
	transactionRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create(t *testing.T) {
	svc := &stubLedgerService{
		createFunc: func(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error) {
			tx := sampleTransaction()
			tx.Description = input.Description
			return tx, nil
		},
	}
	h := NewTransactionHandler(svc, &stubTransactionFilter{}, nil)

	body := `{"date":"2024-01-10","type":"INCOME","amount":1000,"description":"January dues","category":"Dues","member_id":"member-1"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	transactionRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TransactionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "tx-1" || resp.Description != "January dues" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestTransactionHandler_Create_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"bad date", `{"date":"10/01/2024","type":"INCOME","amount":1,"description":"x","category":"Dues"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTransactionHandler(&stubLedgerService{}, &stubTransactionFilter{}, nil)

			req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			transactionRouter(h).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestTransactionHandler_Create_DomainError(t *testing.T) {
	svc := &stubLedgerService{
		createFunc: func(ctx context.Context, input usecase.TransactionInput) (*domain.Transaction, error) {
			return nil, domain.ErrInvalidCategory
		},
	}
	h := NewTransactionHandler(svc, &stubTransactionFilter{}, nil)

	body := `{"date":"2024-01-10","type":"INCOME","amount":1000,"description":"x","category":"Groceries"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	transactionRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Update(t *testing.T) {
	svc := &stubLedgerService{
		updateFunc: func(ctx context.Context, id string, input usecase.TransactionInput) (*domain.Transaction, error) {
			tx := sampleTransaction()
			tx.ID = id
			tx.Description = input.Description
			return tx, nil
		},
	}
	h := NewTransactionHandler(svc, &stubTransactionFilter{}, nil)

	body := `{"date":"2024-01-10","type":"INCOME","amount":1200,"description":"corrected","category":"Dues"}`
	req := httptest.NewRequest(http.MethodPut, "/transactions/tx-1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	transactionRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TransactionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "tx-1" || resp.Description != "corrected" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestTransactionHandler_Update_UnknownID(t *testing.T) {
	svc := &stubLedgerService{
		updateFunc: func(ctx context.Context, id string, input usecase.TransactionInput) (*domain.Transaction, error) {
			return nil, nil
		},
	}
	h := NewTransactionHandler(svc, &stubTransactionFilter{}, nil)

	body := `{"date":"2024-01-10","type":"INCOME","amount":1200,"description":"corrected","category":"Dues"}`
	req := httptest.NewRequest(http.MethodPut, "/transactions/missing", strings.NewReader(body))
	rec := httptest.NewRecorder()
	transactionRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unknown id should answer 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	var deleted string
	svc := &stubLedgerService{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewTransactionHandler(svc, &stubTransactionFilter{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/transactions/tx-1", nil)
	rec := httptest.NewRecorder()
	transactionRouter(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "tx-1" {
		t.Errorf("expected delete of tx-1, got %q", deleted)
	}
}
