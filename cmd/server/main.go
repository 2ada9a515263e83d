package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/handler"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/middleware"
	fileRepo "github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/repository/file"
	memoryRepo "github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/repository/memory"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/infrastructure/config"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/infrastructure/insights"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/infrastructure/logger"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/infrastructure/metrics"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	// Initialize repositories; all ledger state lives in memory, only
	// the UI preference file survives a restart.
	txRepo := memoryRepo.NewTransactionRepository()
	memberRepo := memoryRepo.NewMemberRepository()
	auditRepo := memoryRepo.NewAuditRepository()
	prefStore := fileRepo.NewPreferenceStore(cfg.PreferencesPath)
	idGen := memoryRepo.NewULIDGenerator()
	clock := memoryRepo.NewSystemClock()

	appMetrics := metrics.New()

	// Insights generator; without an API key the use case degrades to
	// its fallback text on the first refresh.
	generator := insights.NewGeminiClient(insights.Config{
		APIKey:  cfg.InsightsAPIKey,
		Model:   cfg.InsightsModel,
		BaseURL: cfg.InsightsBaseURL,
		Timeout: cfg.InsightsTimeout,
	}, appLogger, appMetrics)

	// Initialize use cases
	insightsUC := usecase.NewInsightsUseCase(generator, txRepo, memberRepo, appLogger)
	ledgerUC := usecase.NewLedgerUseCase(txRepo, auditRepo, idGen, clock, insightsUC)
	memberUC := usecase.NewMemberUseCase(memberRepo, auditRepo, idGen, clock, insightsUC)
	auditUC := usecase.NewAuditUseCase(auditRepo)
	reportUC := usecase.NewReportUseCase(txRepo, memberRepo, clock)
	prefUC := usecase.NewPreferenceUseCase(prefStore)

	// Warm up the insights panel in the background.
	insightsUC.DataChanged()

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(ledgerUC, reportUC, appMetrics)
	memberHandler := handler.NewMemberHandler(memberUC, reportUC, appMetrics)
	auditHandler := handler.NewAuditHandler(auditUC)
	reportHandler := handler.NewReportHandler(reportUC, insightsUC)
	preferenceHandler := handler.NewPreferenceHandler(prefUC)
	healthHandler := handler.NewHealthHandler()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: transactionHandler,
		MemberHandler:      memberHandler,
		AuditHandler:       auditHandler,
		ReportHandler:      reportHandler,
		PreferenceHandler:  preferenceHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
		RateLimiter:        middleware.NewRateLimiter(50, 100),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
