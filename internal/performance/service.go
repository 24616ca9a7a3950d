package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/logger"
	"github.com/raptorsgg/orgdash/internal/metrics"
	"github.com/raptorsgg/orgdash/internal/repository"
)

// Error message constants
const (
	ErrMsgTeamRequired      = "team id is required"
	ErrMsgPlayerRequired    = "player id is required"
	ErrMsgMatchDateRequired = "match date is required"
	ErrMsgSubmitFailed      = "failed to submit performance: %w"
	ErrMsgListFailed        = "failed to list performances: %w"
)

// Log message constants
const (
	LogMsgPerformanceSubmitted = "Match performance submitted"
)

// Service defines the interface for match performance operations
type Service interface {
	Submit(ctx context.Context, perf domain.MatchPerformance) (domain.MatchPerformance, error)
	List(ctx context.Context, filter repository.PerformanceFilter) ([]domain.MatchPerformance, error)
}

type service struct {
	repo   repository.Performance
	roster repository.Roster
}

// NewService creates a new performance service
func NewService(repo repository.Performance, roster repository.Roster) Service {
	return &service{repo: repo, roster: roster}
}

func (s *service) Submit(ctx context.Context, perf domain.MatchPerformance) (domain.MatchPerformance, error) {
	log := logger.FromContext(ctx)

	if perf.TeamID == "" {
		return domain.MatchPerformance{}, fmt.Errorf("%s: %w", ErrMsgTeamRequired, domain.ErrInvalidInput)
	}
	if perf.PlayerID == "" {
		return domain.MatchPerformance{}, fmt.Errorf("%s: %w", ErrMsgPlayerRequired, domain.ErrInvalidInput)
	}
	if perf.MatchDate.IsZero() {
		return domain.MatchPerformance{}, fmt.Errorf("%s: %w", ErrMsgMatchDateRequired, domain.ErrInvalidInput)
	}

	team, err := s.roster.GetTeam(ctx, perf.TeamID)
	if err != nil {
		return domain.MatchPerformance{}, fmt.Errorf(ErrMsgSubmitFailed, err)
	}
	if _, err := s.roster.GetPlayer(ctx, perf.PlayerID); err != nil {
		return domain.MatchPerformance{}, fmt.Errorf(ErrMsgSubmitFailed, err)
	}

	// Month is derived from the match date, never caller-supplied, so rows
	// always group under the month they were played in.
	perf.Month = domain.MonthOf(perf.MatchDate)
	perf.ID = uuid.NewString()
	perf.CreatedAt = time.Now()

	if err := s.repo.InsertPerformance(ctx, &perf); err != nil {
		return domain.MatchPerformance{}, fmt.Errorf(ErrMsgSubmitFailed, err)
	}

	metrics.PerformancesSubmitted.WithLabelValues(team.Game).Inc()
	log.Info(LogMsgPerformanceSubmitted,
		"performance_id", perf.ID,
		"team_id", perf.TeamID,
		"player_id", perf.PlayerID,
		"month", perf.Month,
		"won", perf.Won)

	return perf, nil
}

func (s *service) List(ctx context.Context, filter repository.PerformanceFilter) ([]domain.MatchPerformance, error) {
	if filter.Month != "" && !domain.ValidMonth(filter.Month) {
		return nil, domain.ErrInvalidMonth
	}

	perfs, err := s.repo.ListPerformances(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return perfs, nil
}
