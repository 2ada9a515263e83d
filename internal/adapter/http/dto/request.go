package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/usecase"
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// SaveTransactionRequest represents a create or update request for a
// transaction. member_id is only meaningful for income entries.
type SaveTransactionRequest struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	MemberID    string          `json:"member_id,omitempty"`
}

// ToUseCaseInput converts to use case input, parsing the date.
func (r *SaveTransactionRequest) ToUseCaseInput() (usecase.TransactionInput, error) {
	date, err := time.Parse(DateFormat, r.Date)
	if err != nil {
		return usecase.TransactionInput{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, r.Date)
	}

	return usecase.TransactionInput{
		Date:        date,
		Type:        domain.TransactionType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		MemberID:    r.MemberID,
	}, nil
}

// CreateMemberRequest represents a request to register a member.
type CreateMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SetDarkModeRequest represents a dark-mode preference update.
type SetDarkModeRequest struct {
	Enabled bool `json:"enabled"`
}
