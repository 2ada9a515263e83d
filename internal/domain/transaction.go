package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the fixed currency for the whole ledger. Amounts are
// stored as plain magnitudes; the sign lives in TransactionType.
const (
	Currency       = "PKR"
	CurrencySymbol = "Rs."
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Categories is the fixed set a transaction may belong to.
var Categories = []string{
	"Dues",
	"Donation",
	"Utilities",
	"Marketing",
	"Event",
	"Maintenance",
	"Other",
}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Transaction is a single ledger entry: a contribution (income) or an
// outflow (expense). MemberID is only meaningful for income entries.
type Transaction struct {
	ID          string
	Date        time.Time
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	MemberID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsIncome reports whether the transaction adds to the balance.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// Signed returns the amount with its effective sign applied.
func (t *Transaction) Signed() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}
