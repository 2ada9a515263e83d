package memory

import (
	"context"
	"sync"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// AuditRepository is an in-memory, append-only implementation of
// usecase.AuditRepository. New records are prepended so List returns
// the trail newest-first without re-sorting.
type AuditRepository struct {
	mu      sync.RWMutex
	records []*domain.AuditRecord
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Create prepends an audit record.
func (r *AuditRepository) Create(ctx context.Context, record *domain.AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.records = append([]*domain.AuditRecord{&copied}, r.records...)
	return nil
}

// List returns the audit trail, newest first.
func (r *AuditRepository) List(ctx context.Context) ([]*domain.AuditRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.AuditRecord, len(r.records))
	for i, record := range r.records {
		copied := *record
		out[i] = &copied
	}
	return out, nil
}
