package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction

	CreateFunc  func(ctx context.Context, tx *domain.Transaction) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Transaction, error)
	UpdateFunc  func(ctx context.Context, tx *domain.Transaction) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, tx)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, tx := range m.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.transactions {
		if existing.ID == tx.ID {
			m.transactions[i] = tx
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.transactions {
		if existing.ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out, nil
}

// MockMemberRepository is a mock implementation of MemberRepository.
type MockMemberRepository struct {
	mu      sync.RWMutex
	members []*domain.Member

	CreateFunc  func(ctx context.Context, member *domain.Member) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Member, error)
	ListFunc    func(ctx context.Context) ([]*domain.Member, error)
}

func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{}
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members = append(m.members, member)
	return nil
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, member := range m.members {
		if member.ID == id {
			return member, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (m *MockMemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Member, len(m.members))
	copy(out, m.members)
	return out, nil
}

// MockAuditRepository is a mock implementation of AuditRepository.
// Records are prepended so List returns newest-first.
type MockAuditRepository struct {
	mu      sync.RWMutex
	records []*domain.AuditRecord

	CreateFunc func(ctx context.Context, record *domain.AuditRecord) error
	ListFunc   func(ctx context.Context) ([]*domain.AuditRecord, error)
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, record *domain.AuditRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append([]*domain.AuditRecord{record}, m.records...)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context) ([]*domain.AuditRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.AuditRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// MockIDGenerator is a mock implementation of IDGenerator producing a
// deterministic id-1, id-2, ... sequence unless GenerateFunc is set.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}

// MockClock is a mock implementation of Clock returning a fixed time.
type MockClock struct {
	Time time.Time

	NowFunc func() time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{Time: t}
}

func (m *MockClock) Now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return m.Time
}

// MockChangeListener counts DataChanged notifications.
type MockChangeListener struct {
	mu    sync.Mutex
	count int
}

func NewMockChangeListener() *MockChangeListener {
	return &MockChangeListener{}
}

func (m *MockChangeListener) DataChanged() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
}

func (m *MockChangeListener) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
