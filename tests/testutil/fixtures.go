package testutil

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	adaptershttp "github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/handler"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/repository/file"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/repository/memory"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/usecase"
)

// StaticGenerator satisfies usecase.InsightsGenerator with a fixed
// response, keeping integration tests off the network.
type StaticGenerator struct {
	Text string
	Err  error
}

func (g *StaticGenerator) Generate(ctx context.Context, transactions []*domain.Transaction, members []*domain.Member) (string, error) {
	return g.Text, g.Err
}

// App bundles the fully wired application for end-to-end tests.
type App struct {
	Router     http.Handler
	InsightsUC *usecase.InsightsUseCase
}

// NewApp wires the complete application against in-memory stores and
// the given insights generator.
func NewApp(t *testing.T, generator usecase.InsightsGenerator) *App {
	t.Helper()

	txRepo := memory.NewTransactionRepository()
	memberRepo := memory.NewMemberRepository()
	auditRepo := memory.NewAuditRepository()
	prefStore := file.NewPreferenceStore(filepath.Join(t.TempDir(), "preferences.json"))
	idGen := memory.NewULIDGenerator()
	clock := memory.NewSystemClock()
	logger := zerolog.Nop()

	insightsUC := usecase.NewInsightsUseCase(generator, txRepo, memberRepo, logger)
	ledgerUC := usecase.NewLedgerUseCase(txRepo, auditRepo, idGen, clock, insightsUC)
	memberUC := usecase.NewMemberUseCase(memberRepo, auditRepo, idGen, clock, insightsUC)
	auditUC := usecase.NewAuditUseCase(auditRepo)
	reportUC := usecase.NewReportUseCase(txRepo, memberRepo, clock)
	prefUC := usecase.NewPreferenceUseCase(prefStore)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(ledgerUC, reportUC, nil),
		MemberHandler:      handler.NewMemberHandler(memberUC, reportUC, nil),
		AuditHandler:       handler.NewAuditHandler(auditUC),
		ReportHandler:      handler.NewReportHandler(reportUC, insightsUC),
		PreferenceHandler:  handler.NewPreferenceHandler(prefUC),
		HealthHandler:      handler.NewHealthHandler(),
		Logger:             logger,
	})

	return &App{Router: router, InsightsUC: insightsUC}
}
