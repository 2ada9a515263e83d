package usecase

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Fixed insight texts. The panel never shows an error state; every
// failure path degrades to one of these.
const (
	InsightsInitialText  = "Analyzing PKR financials..."
	InsightsFallbackText = "Insights are currently unavailable."
	InsightsEmptyText    = "Unable to generate PKR insights at this time."
)

// InsightsUseCase keeps the latest generated financial summary and
// regenerates it after every data change. Refreshes are asynchronous
// and guarded by a generation token so a stale response can never
// overwrite the result of a more recent request.
type InsightsUseCase struct {
	generator  InsightsGenerator
	txRepo     TransactionRepository
	memberRepo MemberRepository
	logger     zerolog.Logger

	mu         sync.Mutex
	text       string
	generation uint64
}

// NewInsightsUseCase creates a new InsightsUseCase.
func NewInsightsUseCase(generator InsightsGenerator, txRepo TransactionRepository, memberRepo MemberRepository, logger zerolog.Logger) *InsightsUseCase {
	return &InsightsUseCase{
		generator:  generator,
		txRepo:     txRepo,
		memberRepo: memberRepo,
		logger:     logger,
		text:       InsightsInitialText,
	}
}

// Latest returns the most recently stored insights text.
func (uc *InsightsUseCase) Latest() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.text
}

// DataChanged triggers a fire-and-forget refresh. It satisfies
// ChangeListener and returns immediately.
func (uc *InsightsUseCase) DataChanged() {
	go uc.Refresh(context.Background())
}

// Refresh regenerates the insights text from the current ledger
// state. It never returns an error: generation failures are logged
// and the stored text becomes the fallback sentence.
func (uc *InsightsUseCase) Refresh(ctx context.Context) {
	uc.mu.Lock()
	uc.generation++
	generation := uc.generation
	uc.mu.Unlock()

	text := uc.generate(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if generation != uc.generation {
		// A newer refresh started while this one was in flight.
		uc.logger.Debug().Uint64("generation", generation).Msg("discarding stale insights response")
		return
	}
	uc.text = text
}

func (uc *InsightsUseCase) generate(ctx context.Context) string {
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("insights: failed to list transactions")
		return InsightsFallbackText
	}

	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("insights: failed to list members")
		return InsightsFallbackText
	}

	text, err := uc.generator.Generate(ctx, transactions, members)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("insights: generation failed")
		return InsightsFallbackText
	}
	if text == "" {
		return InsightsEmptyText
	}

	return text
}
