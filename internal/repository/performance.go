package repository

import (
	"context"

	"github.com/raptorsgg/orgdash/internal/domain"
)

// PerformanceFilter narrows a match performance listing. Zero values mean
// "no constraint" for the corresponding field.
type PerformanceFilter struct {
	TeamID   string
	PlayerID string
	Month    string
	Limit    int
}

// Performance defines the interface for match performance persistence
type Performance interface {
	InsertPerformance(ctx context.Context, perf *domain.MatchPerformance) error
	ListPerformances(ctx context.Context, filter PerformanceFilter) ([]domain.MatchPerformance, error)
}
