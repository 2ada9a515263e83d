package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/usecase"
)

// ErrorResponse represents an error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	MemberID    string          `json:"member_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.Format(DateFormat),
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		MemberID:    t.MemberID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse is the ledger view payload.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
	Totals       PeriodTotalsResponse   `json:"totals"`
}

// MemberResponse represents a member in API responses.
type MemberResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinDate string `json:"join_date"`
	Status   string `json:"status"`
}

// MemberFromDomain converts a domain member to a response.
func MemberFromDomain(m *domain.Member) *MemberResponse {
	return &MemberResponse{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		JoinDate: m.JoinDate.Format(DateFormat),
		Status:   string(m.Status),
	}
}

// ContributionResponse pairs a member with its all-time income total.
type ContributionResponse struct {
	Member       *MemberResponse `json:"member"`
	Total        decimal.Decimal `json:"total"`
	SharePercent decimal.Decimal `json:"share_percent"`
}

// ContributionsFromDomain converts contributions to responses.
func ContributionsFromDomain(contributions []*domain.MemberContribution) []*ContributionResponse {
	result := make([]*ContributionResponse, len(contributions))
	for i, c := range contributions {
		result[i] = &ContributionResponse{
			Member:       MemberFromDomain(c.Member),
			Total:        c.Total,
			SharePercent: c.SharePercent,
		}
	}
	return result
}

// ListMembersResponse is the members view payload.
type ListMembersResponse struct {
	Members []*ContributionResponse `json:"members"`
	Total   int64                   `json:"total"`
}

// AuditRecordResponse represents an audit record in API responses.
type AuditRecordResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	Details   string    `json:"details"`
}

// AuditRecordsFromDomain converts audit records to responses.
func AuditRecordsFromDomain(records []*domain.AuditRecord) []*AuditRecordResponse {
	result := make([]*AuditRecordResponse, len(records))
	for i, r := range records {
		result[i] = &AuditRecordResponse{
			ID:        r.ID,
			Timestamp: r.Timestamp,
			Action:    string(r.Action),
			Entity:    string(r.Entity),
			Details:   r.Details,
		}
	}
	return result
}

// PeriodTotalsResponse holds income/expense/balance for one period.
type PeriodTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlySummaryResponse is one Jan-Dec chart bucket.
type MonthlySummaryResponse struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardResponse is the full dashboard snapshot for one period.
type DashboardResponse struct {
	Year           int                      `json:"year"`
	Month          int                      `json:"month,omitempty"`
	Currency       string                   `json:"currency"`
	Totals         PeriodTotalsResponse     `json:"totals"`
	AllTimeBalance decimal.Decimal          `json:"all_time_balance"`
	MonthlySeries  []MonthlySummaryResponse `json:"monthly_series"`
	Contributions  []*ContributionResponse  `json:"contributions"`
	Transactions   []*TransactionResponse   `json:"transactions"`
	AvailableYears []int                    `json:"available_years"`
	Insights       string                   `json:"insights"`
}

// DashboardFromSummary converts a report summary to a response.
func DashboardFromSummary(s *usecase.Summary, insights string) *DashboardResponse {
	series := make([]MonthlySummaryResponse, len(s.MonthlySeries))
	for i, bucket := range s.MonthlySeries {
		series[i] = MonthlySummaryResponse{
			Month:   time.Month(bucket.Month).String()[:3],
			Income:  bucket.Income,
			Expense: bucket.Expense,
		}
	}

	return &DashboardResponse{
		Year:           s.Period.Year,
		Month:          s.Period.Month,
		Currency:       domain.CurrencySymbol,
		Totals:         PeriodTotalsFromDomain(s.Totals),
		AllTimeBalance: s.AllTimeBalance,
		MonthlySeries:  series,
		Contributions:  ContributionsFromDomain(s.Contributions),
		Transactions:   TransactionsFromDomain(s.Transactions),
		AvailableYears: s.AvailableYears,
		Insights:       insights,
	}
}

// PeriodTotalsFromDomain converts period totals to a response.
func PeriodTotalsFromDomain(t domain.PeriodTotals) PeriodTotalsResponse {
	return PeriodTotalsResponse{
		Income:  t.Income,
		Expense: t.Expense,
		Balance: t.Balance,
	}
}

// InsightsResponse carries the generated summary text.
type InsightsResponse struct {
	Insights string `json:"insights"`
}

// DarkModeResponse carries the persisted dark-mode preference.
type DarkModeResponse struct {
	Enabled bool `json:"enabled"`
}
