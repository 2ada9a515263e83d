package memory

import (
	"context"
	"sync"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// MemberRepository is an in-memory implementation of
// usecase.MemberRepository. Members are never removed.
type MemberRepository struct {
	mu      sync.RWMutex
	members []*domain.Member
	index   map[string]int
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		index: make(map[string]int),
	}
}

// Create appends a member.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *member
	r.index[member.ID] = len(r.members)
	r.members = append(r.members, &copied)
	return nil
}

// GetByID retrieves a member by ID.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	copied := *r.members[i]
	return &copied, nil
}

// List returns every member in join order.
func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Member, len(r.members))
	for i, member := range r.members {
		copied := *member
		out[i] = &copied
	}
	return out, nil
}
