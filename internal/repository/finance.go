package repository

import (
	"context"

	"github.com/raptorsgg/orgdash/internal/domain"
)

// Finance defines the interface for monthly record, expense, and tier-rate
// persistence. Monthly records are keyed (team_id, month); upsert overwrites.
type Finance interface {
	UpsertMonthlyRecord(ctx context.Context, record *domain.MonthlyRecord) error
	GetMonthlyRecord(ctx context.Context, teamID, month string) (*domain.MonthlyRecord, error)
	ListMonthlyRecords(ctx context.Context, month string) ([]domain.MonthlyRecord, error)

	ListExpenses(ctx context.Context, month string) ([]domain.ExpenseRecord, error)
	InsertExpense(ctx context.Context, expense *domain.ExpenseRecord) error

	GetTierRates(ctx context.Context) ([]domain.TierRate, error)
	UpsertTierRate(ctx context.Context, rate *domain.TierRate) error
}
