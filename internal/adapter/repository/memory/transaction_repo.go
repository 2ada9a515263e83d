package memory

import (
	"context"
	"sync"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// TransactionRepository is an in-memory implementation of
// usecase.TransactionRepository. Insertion order is preserved so the
// aggregator's stable sort keeps same-day entries in creation order.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
	index        map[string]int
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		index: make(map[string]int),
	}
}

// Create appends a transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *tx
	r.index[tx.ID] = len(r.transactions)
	r.transactions = append(r.transactions, &copied)
	return nil
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	copied := *r.transactions[i]
	return &copied, nil
}

// Update replaces the stored transaction with the same ID.
func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[tx.ID]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	copied := *tx
	r.transactions[i] = &copied
	return nil
}

// Delete removes the transaction with the given ID.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}

	r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.transactions); j++ {
		r.index[r.transactions[j].ID] = j
	}
	return nil
}

// List returns every transaction in insertion order.
func (r *TransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Transaction, len(r.transactions))
	for i, tx := range r.transactions {
		copied := *tx
		out[i] = &copied
	}
	return out, nil
}
