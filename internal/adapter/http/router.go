package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/handler"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	MemberHandler      *handler.MemberHandler
	AuditHandler       *handler.AuditHandler
	ReportHandler      *handler.ReportHandler
	PreferenceHandler  *handler.PreferenceHandler
	HealthHandler      *handler.HealthHandler
	Logger             zerolog.Logger
	RateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.NewRecoveryMiddleware(cfg.Logger).Wrap)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Ledger
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", cfg.TransactionHandler.List)
			r.Post("/", cfg.TransactionHandler.Create)
			r.Put("/{id}", cfg.TransactionHandler.Update)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		// Members
		r.Route("/members", func(r chi.Router) {
			r.Get("/", cfg.MemberHandler.List)
			r.Post("/", cfg.MemberHandler.Create)
		})

		// Audit trail
		r.Get("/audit", cfg.AuditHandler.List)

		// Dashboard and insights
		r.Get("/dashboard", cfg.ReportHandler.Dashboard)
		r.Get("/insights", cfg.ReportHandler.Insights)

		// Preferences
		r.Route("/preferences", func(r chi.Router) {
			r.Get("/dark-mode", cfg.PreferenceHandler.GetDarkMode)
			r.Put("/dark-mode", cfg.PreferenceHandler.SetDarkMode)
		})
	})

	return r
}
