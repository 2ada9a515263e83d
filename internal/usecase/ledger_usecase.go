package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// LedgerUseCase handles transaction mutations. Every successful
// mutation appends exactly one audit record and notifies the change
// listener; not-found conditions on update/delete are silent no-ops.
type LedgerUseCase struct {
	txRepo    TransactionRepository
	auditRepo AuditRepository
	idGen     IDGenerator
	clock     Clock
	listener  ChangeListener
}

// NewLedgerUseCase creates a new LedgerUseCase. listener may be nil.
func NewLedgerUseCase(txRepo TransactionRepository, auditRepo AuditRepository, idGen IDGenerator, clock Clock, listener ChangeListener) *LedgerUseCase {
	return &LedgerUseCase{
		txRepo:    txRepo,
		auditRepo: auditRepo,
		idGen:     idGen,
		clock:     clock,
		listener:  listener,
	}
}

// TransactionInput represents a transaction minus its identity.
type TransactionInput struct {
	Date        time.Time
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	MemberID    string
}

// CreateTransaction assigns a new ID and appends the transaction.
func (uc *LedgerUseCase) CreateTransaction(ctx context.Context, input TransactionInput) (*domain.Transaction, error) {
	now := uc.clock.Now().UTC()

	tx := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		MemberID:    input.MemberID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := domain.ValidateTransaction(tx); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Added transaction: %s (%s%s)", tx.Description, domain.CurrencySymbol, tx.Amount.String())
	if err := uc.audit(ctx, domain.AuditActionCreate, domain.AuditEntityTransaction, details); err != nil {
		return nil, err
	}

	uc.notify()

	return tx, nil
}

// UpdateTransaction replaces the transaction matching id, preserving
// its identity. An unknown id is a silent no-op: no error, no audit
// record. The returned transaction is nil in that case.
func (uc *LedgerUseCase) UpdateTransaction(ctx context.Context, id string, input TransactionInput) (*domain.Transaction, error) {
	existing, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	tx := &domain.Transaction{
		ID:          existing.ID,
		Date:        input.Date,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		MemberID:    input.MemberID,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   uc.clock.Now().UTC(),
	}

	if err := domain.ValidateTransaction(tx); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Updated transaction: %s", tx.Description)
	if err := uc.audit(ctx, domain.AuditActionUpdate, domain.AuditEntityTransaction, details); err != nil {
		return nil, err
	}

	uc.notify()

	return tx, nil
}

// DeleteTransaction removes the transaction matching id. Deletion is
// immediate; interactive confirmation is the client's responsibility.
// An unknown id is a silent no-op.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, id string) error {
	existing, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil
		}
		return err
	}

	if err := uc.txRepo.Delete(ctx, id); err != nil {
		return err
	}

	details := fmt.Sprintf("Deleted transaction: %s", existing.Description)
	if err := uc.audit(ctx, domain.AuditActionDelete, domain.AuditEntityTransaction, details); err != nil {
		return err
	}

	uc.notify()

	return nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txRepo.GetByID(ctx, id)
}

// ListTransactions returns every transaction in the ledger.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	return uc.txRepo.List(ctx)
}

func (uc *LedgerUseCase) audit(ctx context.Context, action domain.AuditAction, entity domain.AuditEntity, details string) error {
	return uc.auditRepo.Create(ctx, &domain.AuditRecord{
		ID:        uc.idGen.Generate(),
		Timestamp: uc.clock.Now().UTC(),
		Action:    action,
		Entity:    entity,
		Details:   details,
	})
}

func (uc *LedgerUseCase) notify() {
	if uc.listener != nil {
		uc.listener.DataChanged()
	}
}
