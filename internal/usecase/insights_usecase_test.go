package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/domain"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/usecase"
	"github.com/kashifaziz477/Money-Management-Ledger/internal/usecase/mocks"
)

func newInsightsUseCase(t *testing.T) (*usecase.InsightsUseCase, *mocks.MockInsightsGenerator) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockInsightsGenerator(ctrl)
	uc := usecase.NewInsightsUseCase(gen, mocks.NewMockTransactionRepository(), mocks.NewMockMemberRepository(), zerolog.Nop())
	return uc, gen
}

func TestInsightsUseCase_InitialText(t *testing.T) {
	uc, _ := newInsightsUseCase(t)

	if got := uc.Latest(); got != usecase.InsightsInitialText {
		t.Errorf("expected initial text, got %q", got)
	}
}

func TestInsightsUseCase_Refresh(t *testing.T) {
	uc, gen := newInsightsUseCase(t)

	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Collections are healthy this month.", nil)

	uc.Refresh(context.Background())

	if got := uc.Latest(); got != "Collections are healthy this month." {
		t.Errorf("unexpected text %q", got)
	}
}

func TestInsightsUseCase_Refresh_GeneratorError(t *testing.T) {
	uc, gen := newInsightsUseCase(t)

	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("upstream unavailable"))

	uc.Refresh(context.Background())

	if got := uc.Latest(); got != usecase.InsightsFallbackText {
		t.Errorf("expected fallback text, got %q", got)
	}
}

func TestInsightsUseCase_Refresh_EmptyResponse(t *testing.T) {
	uc, gen := newInsightsUseCase(t)

	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", nil)

	uc.Refresh(context.Background())

	if got := uc.Latest(); got != usecase.InsightsEmptyText {
		t.Errorf("expected empty-state text, got %q", got)
	}
}

func TestInsightsUseCase_Refresh_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockInsightsGenerator(ctrl)

	txRepo := mocks.NewMockTransactionRepository()
	txRepo.ListFunc = func(ctx context.Context) ([]*domain.Transaction, error) {
		return nil, errors.New("store closed")
	}

	uc := usecase.NewInsightsUseCase(gen, txRepo, mocks.NewMockMemberRepository(), zerolog.Nop())
	uc.Refresh(context.Background())

	if got := uc.Latest(); got != usecase.InsightsFallbackText {
		t.Errorf("expected fallback text, got %q", got)
	}
}

func TestInsightsUseCase_StaleResponseDiscarded(t *testing.T) {
	uc, gen := newInsightsUseCase(t)

	started := make(chan struct{})
	release := make(chan struct{})

	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []*domain.Transaction, []*domain.Member) (string, error) {
			close(started)
			<-release
			return "stale response", nil
		})
	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("fresh response", nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		uc.Refresh(context.Background())
	}()

	<-started
	// A second refresh completes while the first is still in flight.
	uc.Refresh(context.Background())
	close(release)
	wg.Wait()

	if got := uc.Latest(); got != "fresh response" {
		t.Errorf("stale response overwrote a newer one: %q", got)
	}
}
