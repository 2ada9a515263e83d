package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// MemberUseCase handles member business logic.
type MemberUseCase struct {
	memberRepo MemberRepository
	auditRepo  AuditRepository
	idGen      IDGenerator
	clock      Clock
	listener   ChangeListener
}

// NewMemberUseCase creates a new MemberUseCase. listener may be nil.
func NewMemberUseCase(memberRepo MemberRepository, auditRepo AuditRepository, idGen IDGenerator, clock Clock, listener ChangeListener) *MemberUseCase {
	return &MemberUseCase{
		memberRepo: memberRepo,
		auditRepo:  auditRepo,
		idGen:      idGen,
		clock:      clock,
		listener:   listener,
	}
}

// CreateMember registers a new member. Name and email are both
// required; join date is the current date and status starts ACTIVE.
func (uc *MemberUseCase) CreateMember(ctx context.Context, name, email string) (*domain.Member, error) {
	if err := domain.ValidateMemberName(name); err != nil {
		return nil, err
	}
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()

	member := &domain.Member{
		ID:        uc.idGen.Generate(),
		Name:      name,
		Email:     email,
		JoinDate:  now.Truncate(24 * time.Hour),
		Status:    domain.MemberStatusActive,
		CreatedAt: now,
	}

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	record := &domain.AuditRecord{
		ID:        uc.idGen.Generate(),
		Timestamp: now,
		Action:    domain.AuditActionCreate,
		Entity:    domain.AuditEntityMember,
		Details:   fmt.Sprintf("Added member: %s", member.Name),
	}
	if err := uc.auditRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if uc.listener != nil {
		uc.listener.DataChanged()
	}

	return member, nil
}

// GetMember retrieves a member by ID.
func (uc *MemberUseCase) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	return uc.memberRepo.GetByID(ctx, id)
}

// ListMembers returns every registered member.
func (uc *MemberUseCase) ListMembers(ctx context.Context) ([]*domain.Member, error) {
	return uc.memberRepo.List(ctx)
}
