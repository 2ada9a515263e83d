package domain

import "github.com/shopspring/decimal"

// AllMonths selects every month of the chosen year when filtering.
const AllMonths = 0

// Period is the (year, month-or-all) window selected for display.
// Month is 1-12, or AllMonths for the whole year.
type Period struct {
	Year  int
	Month int
}

// AllYear reports whether the period spans the whole year.
func (p Period) AllYear() bool {
	return p.Month == AllMonths
}

// PeriodTotals are income/expense/balance sums over one period's
// filtered transactions.
type PeriodTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// MonthlySummary is one Jan-Dec chart bucket for a selected year.
type MonthlySummary struct {
	Month   int // 1-12
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MemberContribution is a member's all-time income total, plus the
// share of overall income used for the dashboard bar widths.
type MemberContribution struct {
	Member       *Member
	Total        decimal.Decimal
	SharePercent decimal.Decimal
}
