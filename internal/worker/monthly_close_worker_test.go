package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/finance"
)

// stubFinanceService records CloseMonth calls; everything else is unused by
// the worker.
type stubFinanceService struct {
	mu           sync.Mutex
	closedMonths []string
}

func (s *stubFinanceService) CloseMonth(_ context.Context, month string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closedMonths = append(s.closedMonths, month)
	return 1, nil
}

func (s *stubFinanceService) months() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.closedMonths...)
}

func (s *stubFinanceService) SubmitMonthly(_ context.Context, _ domain.MonthlyInput) (*domain.MonthlyRecord, error) {
	return nil, nil
}
func (s *stubFinanceService) GetMonthly(_ context.Context, _, _ string) (*domain.MonthlyRecord, error) {
	return nil, nil
}
func (s *stubFinanceService) ListMonthly(_ context.Context, _ string) ([]domain.MonthlyRecord, error) {
	return nil, nil
}
func (s *stubFinanceService) RecordExpense(_ context.Context, e domain.ExpenseRecord) (domain.ExpenseRecord, error) {
	return e, nil
}
func (s *stubFinanceService) TierRates(_ context.Context) ([]domain.TierRate, error) {
	return nil, nil
}
func (s *stubFinanceService) SetTierRate(_ context.Context, _ domain.TierRate) error { return nil }
func (s *stubFinanceService) Policy() finance.Policy                                 { return finance.DefaultPolicy() }

func TestMonthlyCloseWorker_TriggerNow(t *testing.T) {
	svc := &stubFinanceService{}
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	worker := NewMonthlyCloseWorker(svc, pool, "0 3 1 * *")
	worker.TriggerNow("2026-07")

	require.Eventually(t, func() bool {
		return len(svc.months()) == 1
	}, time.Second, TestWorkerPollInterval)

	assert.Equal(t, []string{"2026-07"}, svc.months())
}

func TestMonthlyCloseWorker_StartStop(t *testing.T) {
	svc := &stubFinanceService{}
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	worker := NewMonthlyCloseWorker(svc, pool, "0 3 1 * *")
	require.NoError(t, worker.Start())
	worker.Stop()
}

func TestMonthlyCloseWorker_BadSchedule(t *testing.T) {
	worker := NewMonthlyCloseWorker(&stubFinanceService{}, NewPool(1, 1), "not a cron spec")
	assert.Error(t, worker.Start())
}
