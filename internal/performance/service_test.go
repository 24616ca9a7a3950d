package performance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/repository"
)

// fakePerformanceRepo is an in-memory repository.Performance implementation
type fakePerformanceRepo struct {
	perfs []domain.MatchPerformance
}

func (r *fakePerformanceRepo) InsertPerformance(_ context.Context, perf *domain.MatchPerformance) error {
	r.perfs = append(r.perfs, *perf)
	return nil
}

func (r *fakePerformanceRepo) ListPerformances(_ context.Context, filter repository.PerformanceFilter) ([]domain.MatchPerformance, error) {
	var out []domain.MatchPerformance
	for _, p := range r.perfs {
		if filter.TeamID != "" && p.TeamID != filter.TeamID {
			continue
		}
		if filter.PlayerID != "" && p.PlayerID != filter.PlayerID {
			continue
		}
		if filter.Month != "" && p.Month != filter.Month {
			continue
		}
		out = append(out, p)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// fakeRoster knows one team and one player
type fakeRoster struct{}

func (fakeRoster) CreateTeam(_ context.Context, _ *domain.Team) error { return nil }

func (fakeRoster) GetTeam(_ context.Context, teamID string) (*domain.Team, error) {
	if teamID != "team-1" {
		return nil, domain.ErrTeamNotFound
	}
	return &domain.Team{ID: "team-1", Name: "Raptors Main", Game: "pubg", Active: true}, nil
}

func (fakeRoster) GetTeamByName(_ context.Context, _ string) (*domain.Team, error) {
	return nil, domain.ErrTeamNotFound
}
func (fakeRoster) ListTeams(_ context.Context, _ bool) ([]domain.Team, error) { return nil, nil }
func (fakeRoster) UpdateTeam(_ context.Context, _ *domain.Team) error         { return nil }
func (fakeRoster) DeactivateTeam(_ context.Context, _ string) error           { return nil }
func (fakeRoster) CreatePlayer(_ context.Context, _ *domain.Player) error     { return nil }

func (fakeRoster) GetPlayer(_ context.Context, playerID string) (*domain.Player, error) {
	if playerID != "p1" {
		return nil, domain.ErrPlayerNotFound
	}
	return &domain.Player{ID: "p1", TeamID: "team-1", Handle: "ace", Active: true}, nil
}

func (fakeRoster) ListPlayersByTeam(_ context.Context, _ string, _ bool) ([]domain.Player, error) {
	return nil, nil
}
func (fakeRoster) DeactivatePlayer(_ context.Context, _ string) error { return nil }

func validPerformance() domain.MatchPerformance {
	return domain.MatchPerformance{
		TeamID:       "team-1",
		PlayerID:     "p1",
		MatchDate:    time.Date(2026, 7, 12, 20, 0, 0, 0, time.UTC),
		Tournament:   "weekly scrims",
		Kills:        7,
		Damage:       1432.5,
		SurvivalTime: 28.4,
		Placement:    1,
		Won:          true,
	}
}

func TestSubmit(t *testing.T) {
	repo := &fakePerformanceRepo{}
	svc := NewService(repo, fakeRoster{})
	ctx := context.Background()

	t.Run("month derived from match date", func(t *testing.T) {
		perf := validPerformance()
		perf.Month = "1999-01" // caller-supplied month is discarded

		stored, err := svc.Submit(ctx, perf)
		require.NoError(t, err)

		assert.NotEmpty(t, stored.ID)
		assert.Equal(t, "2026-07", stored.Month)
		assert.False(t, stored.CreatedAt.IsZero())
		assert.Len(t, repo.perfs, 1)
	})

	t.Run("unknown team", func(t *testing.T) {
		perf := validPerformance()
		perf.TeamID = "ghost"
		_, err := svc.Submit(ctx, perf)
		assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	})

	t.Run("unknown player", func(t *testing.T) {
		perf := validPerformance()
		perf.PlayerID = "ghost"
		_, err := svc.Submit(ctx, perf)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("missing match date", func(t *testing.T) {
		perf := validPerformance()
		perf.MatchDate = time.Time{}
		_, err := svc.Submit(ctx, perf)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestList(t *testing.T) {
	repo := &fakePerformanceRepo{}
	svc := NewService(repo, fakeRoster{})
	ctx := context.Background()

	for day := 1; day <= 3; day++ {
		perf := validPerformance()
		perf.MatchDate = time.Date(2026, 7, day, 20, 0, 0, 0, time.UTC)
		_, err := svc.Submit(ctx, perf)
		require.NoError(t, err)
	}

	t.Run("month filter", func(t *testing.T) {
		perfs, err := svc.List(ctx, repository.PerformanceFilter{Month: "2026-07"})
		require.NoError(t, err)
		assert.Len(t, perfs, 3)

		perfs, err = svc.List(ctx, repository.PerformanceFilter{Month: "2026-08"})
		require.NoError(t, err)
		assert.Empty(t, perfs)
	})

	t.Run("limit", func(t *testing.T) {
		perfs, err := svc.List(ctx, repository.PerformanceFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, perfs, 2)
	})

	t.Run("invalid month rejected", func(t *testing.T) {
		_, err := svc.List(ctx, repository.PerformanceFilter{Month: "07-2026"})
		assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	})
}
