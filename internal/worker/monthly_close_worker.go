package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/finance"
	"github.com/raptorsgg/orgdash/internal/logger"
)

// MonthlyCloseWorker runs the scheduled monthly close: shortly after a month
// ends, every team that has raw expense data but no persisted outcome row
// for that month gets one computed and stored.
type MonthlyCloseWorker struct {
	financeService finance.Service
	pool           *Pool
	cron           *cron.Cron
	schedule       string
}

// NewMonthlyCloseWorker creates a MonthlyCloseWorker. schedule is a standard
// cron expression, typically "0 3 1 * *" (03:00 on the 1st).
func NewMonthlyCloseWorker(financeService finance.Service, pool *Pool, schedule string) *MonthlyCloseWorker {
	return &MonthlyCloseWorker{
		financeService: financeService,
		pool:           pool,
		cron:           cron.New(),
		schedule:       schedule,
	}
}

// Start registers the cron entry and starts the scheduler
func (w *MonthlyCloseWorker) Start() error {
	log := logger.FromContext(context.Background())

	_, err := w.cron.AddFunc(w.schedule, func() {
		// The close always targets the month that just ended.
		month := domain.PreviousMonth(domain.MonthOf(time.Now()))
		logger.FromContext(context.Background()).Info(LogMsgMonthlyCloseTriggered, "month", month)
		w.pool.Enqueue(&monthlyCloseJob{
			financeService: w.financeService,
			month:          month,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to schedule monthly close: %w", err)
	}

	w.cron.Start()
	log.Info(LogMsgMonthlyCloseScheduled, "schedule", w.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running entry to finish
func (w *MonthlyCloseWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	logger.FromContext(context.Background()).Info(LogMsgMonthlyCloseStopped)
}

// TriggerNow enqueues a close for the given month immediately, bypassing the
// schedule. Used by operators after backfilling expense data.
func (w *MonthlyCloseWorker) TriggerNow(month string) {
	w.pool.Enqueue(&monthlyCloseJob{
		financeService: w.financeService,
		month:          month,
	})
}

// monthlyCloseJob is the pool job that performs one close run
type monthlyCloseJob struct {
	financeService finance.Service
	month          string
}

func (j *monthlyCloseJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	closed, err := j.financeService.CloseMonth(ctx, j.month)
	if err != nil {
		log.Error(LogMsgMonthlyCloseFailed, "month", j.month, "error", err)
		return err
	}

	log.Info(LogMsgMonthlyCloseCompleted, "month", j.month, "teams_closed", closed)
	return nil
}
