package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

func newTransaction(id string, day int) *domain.Transaction {
	return &domain.Transaction{
		ID:          id,
		Date:        time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		Type:        domain.TransactionTypeIncome,
		Amount:      decimal.NewFromInt(100),
		Description: "dues",
		Category:    "Dues",
	}
}

func TestTransactionRepository_CreateAndGet(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	tx := newTransaction("tx-1", 1)
	if err := repo.Create(ctx, tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, "tx-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "tx-1" || got.Description != "dues" {
		t.Errorf("unexpected transaction %+v", got)
	}

	// The store hands out copies, not its own pointers.
	got.Description = "mutated"
	again, _ := repo.GetByID(ctx, "tx-1")
	if again.Description != "dues" {
		t.Error("mutation through a returned pointer leaked into the store")
	}
}

func TestTransactionRepository_GetByID_NotFound(t *testing.T) {
	repo := NewTransactionRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionRepository_Update(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, newTransaction("tx-1", 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := newTransaction("tx-1", 1)
	updated.Description = "corrected dues"
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := repo.GetByID(ctx, "tx-1")
	if got.Description != "corrected dues" {
		t.Errorf("update not applied: %q", got.Description)
	}

	if err := repo.Update(ctx, newTransaction("missing", 1)); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionRepository_Delete(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	for i, id := range []string{"tx-1", "tx-2", "tx-3"} {
		if err := repo.Create(ctx, newTransaction(id, i+1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := repo.Delete(ctx, "tx-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetByID(ctx, "tx-2"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("deleted transaction still retrievable")
	}

	// The index must stay consistent after the shift.
	got, err := repo.GetByID(ctx, "tx-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "tx-3" {
		t.Errorf("index out of sync, got %+v", got)
	}

	if err := repo.Delete(ctx, "missing"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionRepository_List_InsertionOrder(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	ids := []string{"tx-1", "tx-2", "tx-3"}
	for i, id := range ids {
		if err := repo.Create(ctx, newTransaction(id, i+1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(ids) {
		t.Fatalf("expected %d transactions, got %d", len(ids), len(got))
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}
