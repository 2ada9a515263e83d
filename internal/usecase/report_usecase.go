package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
)

// ReportUseCase derives the dashboard views from the raw collections.
// Everything here is recomputed per call; it only ever reads.
type ReportUseCase struct {
	txRepo     TransactionRepository
	memberRepo MemberRepository
	clock      Clock
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(txRepo TransactionRepository, memberRepo MemberRepository, clock Clock) *ReportUseCase {
	return &ReportUseCase{
		txRepo:     txRepo,
		memberRepo: memberRepo,
		clock:      clock,
	}
}

// FilterTransactions returns the transactions visible for the period,
// sorted by date descending. A transaction matches when its
// description contains search (case-insensitive), its year equals the
// period's year, and the period is all-year or the months match.
func (uc *ReportUseCase) FilterTransactions(ctx context.Context, period domain.Period, search string) ([]*domain.Transaction, error) {
	all, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(search)

	filtered := make([]*domain.Transaction, 0, len(all))
	for _, tx := range all {
		if !strings.Contains(strings.ToLower(tx.Description), search) {
			continue
		}
		if tx.Date.Year() != period.Year {
			continue
		}
		if !period.AllYear() && int(tx.Date.Month()) != period.Month {
			continue
		}
		filtered = append(filtered, tx)
	}

	// Stable keeps insertion order for same-day entries.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	return filtered, nil
}

// PeriodTotals sums income and expense over the given transactions.
func (uc *ReportUseCase) PeriodTotals(transactions []*domain.Transaction) domain.PeriodTotals {
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range transactions {
		if tx.IsIncome() {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}

	return domain.PeriodTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// AllTimeBalance computes income minus expense over the entire
// ledger, independent of any period selection.
func (uc *ReportUseCase) AllTimeBalance(ctx context.Context) (decimal.Decimal, error) {
	all, err := uc.txRepo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return uc.PeriodTotals(all).Balance, nil
}

// MemberContributions returns every member's all-time income total,
// ranked by total descending. Members without any linked income
// report a total of 0. The share percentage divisor is overall income
// floored at 1 so an empty ledger never divides by zero.
func (uc *ReportUseCase) MemberContributions(ctx context.Context) ([]*domain.MemberContribution, error) {
	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	all, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal, len(members))
	totalIncome := decimal.Zero
	for _, tx := range all {
		if !tx.IsIncome() {
			continue
		}
		totalIncome = totalIncome.Add(tx.Amount)
		if tx.MemberID != "" {
			totals[tx.MemberID] = totals[tx.MemberID].Add(tx.Amount)
		}
	}

	divisor := totalIncome
	if divisor.LessThan(decimal.NewFromInt(1)) {
		divisor = decimal.NewFromInt(1)
	}

	contributions := make([]*domain.MemberContribution, len(members))
	for i, m := range members {
		total := totals[m.ID]
		contributions[i] = &domain.MemberContribution{
			Member:       m,
			Total:        total,
			SharePercent: total.Div(divisor).Mul(decimal.NewFromInt(100)),
		}
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].Total.GreaterThan(contributions[j].Total)
	})

	return contributions, nil
}

// MonthlySeries produces exactly twelve Jan-Dec buckets for the given
// year, accumulating every transaction of that year by type.
// Transactions from other years never leak into a bucket.
func (uc *ReportUseCase) MonthlySeries(ctx context.Context, year int) ([]domain.MonthlySummary, error) {
	all, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	series := make([]domain.MonthlySummary, 12)
	for i := range series {
		series[i] = domain.MonthlySummary{
			Month:   i + 1,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, tx := range all {
		if tx.Date.Year() != year {
			continue
		}
		bucket := &series[int(tx.Date.Month())-1]
		if tx.IsIncome() {
			bucket.Income = bucket.Income.Add(tx.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(tx.Amount)
		}
	}

	return series, nil
}

// AvailableYears lists the years offered by the period selector:
// last year, this year and next year.
func (uc *ReportUseCase) AvailableYears() []int {
	current := uc.clock.Now().Year()
	return []int{current - 1, current, current + 1}
}

// Summary bundles every derived view for one period selection.
type Summary struct {
	Period         domain.Period
	Transactions   []*domain.Transaction
	Totals         domain.PeriodTotals
	AllTimeBalance decimal.Decimal
	Contributions  []*domain.MemberContribution
	MonthlySeries  []domain.MonthlySummary
	AvailableYears []int
}

// Summarize computes the full dashboard snapshot for a period.
func (uc *ReportUseCase) Summarize(ctx context.Context, period domain.Period, search string) (*Summary, error) {
	filtered, err := uc.FilterTransactions(ctx, period, search)
	if err != nil {
		return nil, err
	}

	allTime, err := uc.AllTimeBalance(ctx)
	if err != nil {
		return nil, err
	}

	contributions, err := uc.MemberContributions(ctx)
	if err != nil {
		return nil, err
	}

	series, err := uc.MonthlySeries(ctx, period.Year)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Period:         period,
		Transactions:   filtered,
		Totals:         uc.PeriodTotals(filtered),
		AllTimeBalance: allTime,
		Contributions:  contributions,
		MonthlySeries:  series,
		AvailableYears: uc.AvailableYears(),
	}, nil
}
