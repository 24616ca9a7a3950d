package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/repository"
)

// fakePerfRepo serves a fixed performance slice, filtered in memory
type fakePerfRepo struct {
	perfs   []domain.MatchPerformance
	listErr error
}

func (r *fakePerfRepo) InsertPerformance(_ context.Context, perf *domain.MatchPerformance) error {
	r.perfs = append(r.perfs, *perf)
	return nil
}

func (r *fakePerfRepo) ListPerformances(_ context.Context, filter repository.PerformanceFilter) ([]domain.MatchPerformance, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
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
	}
	return out, nil
}

// fakeRoster serves fixed teams and players
type fakeRoster struct {
	teams   []domain.Team
	players []domain.Player
}

func (r *fakeRoster) CreateTeam(_ context.Context, _ *domain.Team) error { return nil }

func (r *fakeRoster) GetTeam(_ context.Context, teamID string) (*domain.Team, error) {
	for i := range r.teams {
		if r.teams[i].ID == teamID {
			return &r.teams[i], nil
		}
	}
	return nil, domain.ErrTeamNotFound
}

func (r *fakeRoster) GetTeamByName(_ context.Context, _ string) (*domain.Team, error) {
	return nil, domain.ErrTeamNotFound
}

func (r *fakeRoster) ListTeams(_ context.Context, _ bool) ([]domain.Team, error) {
	return r.teams, nil
}

func (r *fakeRoster) UpdateTeam(_ context.Context, _ *domain.Team) error     { return nil }
func (r *fakeRoster) DeactivateTeam(_ context.Context, _ string) error       { return nil }
func (r *fakeRoster) CreatePlayer(_ context.Context, _ *domain.Player) error { return nil }

func (r *fakeRoster) GetPlayer(_ context.Context, playerID string) (*domain.Player, error) {
	for i := range r.players {
		if r.players[i].ID == playerID {
			return &r.players[i], nil
		}
	}
	return nil, domain.ErrPlayerNotFound
}

func (r *fakeRoster) ListPlayersByTeam(_ context.Context, teamID string, _ bool) ([]domain.Player, error) {
	var out []domain.Player
	for _, p := range r.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRoster) DeactivatePlayer(_ context.Context, _ string) error { return nil }

func perf(teamID, playerID string, won bool, kills int, damage float64) domain.MatchPerformance {
	return domain.MatchPerformance{
		TeamID:   teamID,
		PlayerID: playerID,
		Month:    "2026-07",
		Won:      won,
		Kills:    kills,
		Damage:   damage,
	}
}

func testRoster() *fakeRoster {
	return &fakeRoster{
		teams: []domain.Team{
			{ID: "team-1", Name: "Raptors Main", CurrentTier: domain.TierT2, Active: true},
			{ID: "team-2", Name: "Raptors Academy", CurrentTier: domain.TierT4, Active: true},
		},
		players: []domain.Player{
			{ID: "p1", TeamID: "team-1", Handle: "ace"},
			{ID: "p2", TeamID: "team-1", Handle: "clutch"},
		},
	}
}

func TestOverview(t *testing.T) {
	perfRepo := &fakePerfRepo{perfs: []domain.MatchPerformance{
		perf("team-1", "p1", true, 8, 1200),
		perf("team-1", "p2", false, 2, 400),
		perf("team-2", "p3", true, 5, 900),
		perf("team-2", "p3", true, 6, 1100),
	}}
	svc := NewService(perfRepo, testRoster())

	overview, err := svc.Overview(context.Background(), "2026-07")
	require.NoError(t, err)

	assert.Equal(t, 2, overview.ActiveTeams)
	assert.Equal(t, 4, overview.TotalMatches)
	assert.Equal(t, 3, overview.TotalWins)
	assert.InDelta(t, 75.0, overview.WinRate, 1e-9)
	assert.InDelta(t, 5.25, overview.AvgKills, 1e-9)
	assert.InDelta(t, 900.0, overview.AvgDamage, 1e-9)

	require.Len(t, overview.TeamStandings, 2)
	require.NotNil(t, overview.TopTeam)
	assert.Equal(t, "team-2", overview.TopTeam.TeamID)
	assert.InDelta(t, 100.0, overview.TopTeam.WinRate, 1e-9)
}

func TestOverview_Empty(t *testing.T) {
	svc := NewService(&fakePerfRepo{}, &fakeRoster{})

	overview, err := svc.Overview(context.Background(), "")
	require.NoError(t, err)

	assert.Zero(t, overview.TotalMatches)
	assert.Zero(t, overview.WinRate)
	assert.Nil(t, overview.TopTeam)
}

func TestOverview_TopTeamTieKeepsEarlier(t *testing.T) {
	// Both teams at 100%: the team listed first keeps the top slot.
	perfRepo := &fakePerfRepo{perfs: []domain.MatchPerformance{
		perf("team-1", "p1", true, 5, 800),
		perf("team-2", "p3", true, 5, 800),
	}}
	svc := NewService(perfRepo, testRoster())

	overview, err := svc.Overview(context.Background(), "2026-07")
	require.NoError(t, err)

	require.NotNil(t, overview.TopTeam)
	assert.Equal(t, "team-1", overview.TopTeam.TeamID)
}

func TestOverview_PropagatesRepoError(t *testing.T) {
	repoErr := errors.New("connection reset")
	svc := NewService(&fakePerfRepo{listErr: repoErr}, testRoster())

	_, err := svc.Overview(context.Background(), "2026-07")
	assert.ErrorIs(t, err, repoErr)
}

func TestOverview_InvalidMonth(t *testing.T) {
	svc := NewService(&fakePerfRepo{}, &fakeRoster{})

	_, err := svc.Overview(context.Background(), "not-a-month")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestTeam(t *testing.T) {
	perfRepo := &fakePerfRepo{perfs: []domain.MatchPerformance{
		{TeamID: "team-1", PlayerID: "p1", Month: "2026-07", Won: true, Kills: 8, Damage: 1200, SurvivalTime: 30, Placement: 1},
		{TeamID: "team-1", PlayerID: "p2", Month: "2026-07", Won: false, Kills: 2, Damage: 400, SurvivalTime: 12, Placement: 9},
		{TeamID: "team-1", PlayerID: "p1", Month: "2026-07", Won: false, Kills: 4, Damage: 700, SurvivalTime: 20, Placement: 4},
	}}
	svc := NewService(perfRepo, testRoster())

	report, err := svc.Team(context.Background(), "team-1", "2026-07")
	require.NoError(t, err)

	assert.Equal(t, "Raptors Main", report.TeamName)
	assert.Equal(t, 3, report.Matches)
	assert.Equal(t, 1, report.Wins)
	assert.InDelta(t, 100.0/3, report.WinRate, 1e-9)
	assert.InDelta(t, 14.0/3, report.AvgKills, 1e-9)

	require.Len(t, report.Players, 2)
	assert.Equal(t, "p1", report.Players[0].PlayerID)
	assert.Equal(t, "ace", report.Players[0].Handle)
	assert.Equal(t, 2, report.Players[0].Matches)
	assert.Equal(t, 12, report.Players[0].TotalKills)
	assert.Equal(t, 1, report.Players[0].BestPlace)

	require.NotNil(t, report.TopPerformer)
	assert.Equal(t, "p1", report.TopPerformer.PlayerID)
}

func TestTeam_Validation(t *testing.T) {
	svc := NewService(&fakePerfRepo{}, testRoster())
	ctx := context.Background()

	_, err := svc.Team(ctx, "", "2026-07")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Team(ctx, "team-1", "bad")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)

	_, err = svc.Team(ctx, "missing", "")
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestPlayer(t *testing.T) {
	perfRepo := &fakePerfRepo{perfs: []domain.MatchPerformance{
		{TeamID: "team-1", PlayerID: "p1", Month: "2026-07", Won: true, Kills: 8, Damage: 1200, SurvivalTime: 30, Placement: 2},
		{TeamID: "team-1", PlayerID: "p1", Month: "2026-07", Won: false, Kills: 4, Damage: 600, SurvivalTime: 18, Placement: 5},
	}}
	svc := NewService(perfRepo, testRoster())

	report, err := svc.Player(context.Background(), "p1", "2026-07")
	require.NoError(t, err)

	assert.Equal(t, "ace", report.Handle)
	assert.Equal(t, 2, report.Matches)
	assert.InDelta(t, 50.0, report.WinRate, 1e-9)
	assert.InDelta(t, 6.0, report.AvgKills, 1e-9)
	assert.InDelta(t, 900.0, report.AvgDamage, 1e-9)
	assert.InDelta(t, 24.0, report.AvgSurvival, 1e-9)
	assert.Equal(t, 2, report.BestPlace)
}

func TestPlayer_NoMatches(t *testing.T) {
	svc := NewService(&fakePerfRepo{}, testRoster())

	report, err := svc.Player(context.Background(), "p2", "2026-07")
	require.NoError(t, err)

	assert.Equal(t, "clutch", report.Handle)
	assert.Zero(t, report.Matches)
	assert.Zero(t, report.WinRate)
}

func TestPlayer_Unknown(t *testing.T) {
	svc := NewService(&fakePerfRepo{}, testRoster())

	_, err := svc.Player(context.Background(), "ghost", "")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
