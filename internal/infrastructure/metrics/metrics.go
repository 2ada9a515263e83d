package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the ledger.
type Metrics struct {
	// Ledger metrics
	TransactionsCreated prometheus.Counter
	TransactionsUpdated prometheus.Counter
	TransactionsDeleted prometheus.Counter
	MembersCreated      prometheus.Counter
	AuditRecordsCreated *prometheus.CounterVec

	// Insights metrics
	InsightsRequests prometheus.Counter
	InsightsFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kameti_transactions_created_total",
			Help: "Total number of transactions created",
		}),
		TransactionsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kameti_transactions_updated_total",
			Help: "Total number of transactions updated",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kameti_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		MembersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kameti_members_created_total",
			Help: "Total number of members registered",
		}),
		AuditRecordsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kameti_audit_records_total",
				Help: "Total audit records by action and entity",
			},
			[]string{"action", "entity"},
		),
		InsightsRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kameti_insights_requests_total",
			Help: "Total insight generation attempts",
		}),
		InsightsFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kameti_insights_failures_total",
			Help: "Total insight generation failures",
		}),
	}
}
