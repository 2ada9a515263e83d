package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionSigned(t *testing.T) {
	income := &Transaction{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(500)}
	if !income.Signed().Equal(decimal.NewFromInt(500)) {
		t.Errorf("income should keep its sign, got %s", income.Signed())
	}

	expense := &Transaction{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(400)}
	if !expense.Signed().Equal(decimal.NewFromInt(-400)) {
		t.Errorf("expense should be negated, got %s", expense.Signed())
	}
}

func TestPeriodAllYear(t *testing.T) {
	if !(Period{Year: 2024, Month: AllMonths}).AllYear() {
		t.Error("month 0 should mean the whole year")
	}
	if (Period{Year: 2024, Month: 3}).AllYear() {
		t.Error("a concrete month is not the whole year")
	}
}
