package usecase

import (
	"context"
	"time"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Transaction, error)
}

// MemberRepository defines data access for members.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
}

// AuditRepository defines data access for the audit trail.
// List returns records newest-first.
type AuditRepository interface {
	Create(ctx context.Context, record *domain.AuditRecord) error
	List(ctx context.Context) ([]*domain.AuditRecord, error)
}

// PreferenceStore holds UI preferences as string key/value pairs.
type PreferenceStore interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// InsightsGenerator produces a short financial summary for the
// current ledger contents.
type InsightsGenerator interface {
	Generate(ctx context.Context, transactions []*domain.Transaction, members []*domain.Member) (string, error)
}

// ChangeListener is notified after every successful ledger mutation.
type ChangeListener interface {
	DataChanged()
}
