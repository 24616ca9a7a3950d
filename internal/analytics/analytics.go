package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/repository"
)

// Error message constants
const (
	ErrMsgTeamRequired   = "team id is required"
	ErrMsgPlayerRequired = "player id is required"
	ErrMsgOverviewFailed = "failed to build overview: %w"
	ErrMsgTeamFailed     = "failed to build team analytics: %w"
	ErrMsgPlayerFailed   = "failed to build player analytics: %w"
)

// Overview aggregates the whole organization for a month (or all time when
// month is empty).
type Overview struct {
	Month         string         `json:"month,omitempty"`
	ActiveTeams   int            `json:"active_teams"`
	TotalMatches  int            `json:"total_matches"`
	TotalWins     int            `json:"total_wins"`
	WinRate       float64        `json:"win_rate"` // 0-100
	AvgKills      float64        `json:"avg_kills"`
	AvgDamage     float64        `json:"avg_damage"`
	TopTeam       *TeamStanding  `json:"top_team,omitempty"`
	TeamStandings []TeamStanding `json:"team_standings"`
}

// TeamStanding is one team's aggregate line in the overview
type TeamStanding struct {
	TeamID   string  `json:"team_id"`
	TeamName string  `json:"team_name"`
	Tier     string  `json:"tier"`
	Matches  int     `json:"matches"`
	Wins     int     `json:"wins"`
	WinRate  float64 `json:"win_rate"`
}

// TeamReport aggregates one team's performances plus per-player lines
type TeamReport struct {
	TeamID       string         `json:"team_id"`
	TeamName     string         `json:"team_name"`
	Month        string         `json:"month,omitempty"`
	Matches      int            `json:"matches"`
	Wins         int            `json:"wins"`
	WinRate      float64        `json:"win_rate"`
	AvgKills     float64        `json:"avg_kills"`
	AvgDamage    float64        `json:"avg_damage"`
	AvgPlacement float64        `json:"avg_placement"`
	TopPerformer *PlayerReport  `json:"top_performer,omitempty"`
	Players      []PlayerReport `json:"players"`
}

// PlayerReport aggregates one player's performances
type PlayerReport struct {
	PlayerID    string  `json:"player_id"`
	Handle      string  `json:"handle,omitempty"`
	Matches     int     `json:"matches"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"win_rate"`
	TotalKills  int     `json:"total_kills"`
	AvgKills    float64 `json:"avg_kills"`
	AvgDamage   float64 `json:"avg_damage"`
	AvgSurvival float64 `json:"avg_survival"`
	BestPlace   int     `json:"best_placement,omitempty"`
}

// Service defines the interface for analytics aggregation
type Service interface {
	Overview(ctx context.Context, month string) (*Overview, error)
	Team(ctx context.Context, teamID, month string) (*TeamReport, error)
	Player(ctx context.Context, playerID, month string) (*PlayerReport, error)
}

type service struct {
	perf   repository.Performance
	roster repository.Roster
}

// NewService creates a new analytics service
func NewService(perf repository.Performance, roster repository.Roster) Service {
	return &service{perf: perf, roster: roster}
}

// Overview builds the organization-wide aggregate. Teams and performances
// are fetched concurrently; the aggregation itself is a single pass.
func (s *service) Overview(ctx context.Context, month string) (*Overview, error) {
	if month != "" && !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}

	var (
		teams []domain.Team
		perfs []domain.MatchPerformance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.roster.ListTeams(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		perfs, err = s.perf.ListPerformances(gctx, repository.PerformanceFilter{Month: month})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf(ErrMsgOverviewFailed, err)
	}

	overview := &Overview{
		Month:       month,
		ActiveTeams: len(teams),
	}

	type teamAgg struct {
		matches int
		wins    int
	}
	byTeam := make(map[string]*teamAgg, len(teams))
	for _, t := range teams {
		byTeam[t.ID] = &teamAgg{}
	}

	var totalKills int
	var totalDamage float64
	for _, p := range perfs {
		overview.TotalMatches++
		totalKills += p.Kills
		totalDamage += p.Damage
		if p.Won {
			overview.TotalWins++
		}
		if agg, ok := byTeam[p.TeamID]; ok {
			agg.matches++
			if p.Won {
				agg.wins++
			}
		}
	}

	if overview.TotalMatches > 0 {
		n := float64(overview.TotalMatches)
		overview.WinRate = float64(overview.TotalWins) / n * 100
		overview.AvgKills = float64(totalKills) / n
		overview.AvgDamage = totalDamage / n
	}

	for _, t := range teams {
		agg := byTeam[t.ID]
		standing := TeamStanding{
			TeamID:   t.ID,
			TeamName: t.Name,
			Tier:     string(t.CurrentTier),
			Matches:  agg.matches,
			Wins:     agg.wins,
		}
		if agg.matches > 0 {
			standing.WinRate = float64(agg.wins) / float64(agg.matches) * 100
		}
		overview.TeamStandings = append(overview.TeamStandings, standing)

		// Strict greater-than keeps the earlier team on ties.
		if overview.TopTeam == nil || standing.WinRate > overview.TopTeam.WinRate {
			top := standing
			overview.TopTeam = &top
		}
	}

	return overview, nil
}

func (s *service) Team(ctx context.Context, teamID, month string) (*TeamReport, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgTeamRequired, domain.ErrInvalidInput)
	}
	if month != "" && !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}

	var (
		team    *domain.Team
		players []domain.Player
		perfs   []domain.MatchPerformance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		team, err = s.roster.GetTeam(gctx, teamID)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = s.roster.ListPlayersByTeam(gctx, teamID, false)
		return err
	})
	g.Go(func() error {
		var err error
		perfs, err = s.perf.ListPerformances(gctx, repository.PerformanceFilter{TeamID: teamID, Month: month})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf(ErrMsgTeamFailed, err)
	}

	handles := make(map[string]string, len(players))
	for _, p := range players {
		handles[p.ID] = p.Handle
	}

	report := &TeamReport{
		TeamID:   team.ID,
		TeamName: team.Name,
		Month:    month,
	}

	playerReports, playerOrder := aggregateByPlayer(perfs)

	var totalKills, totalPlacement int
	var totalDamage float64
	for _, p := range perfs {
		report.Matches++
		totalKills += p.Kills
		totalDamage += p.Damage
		totalPlacement += p.Placement
		if p.Won {
			report.Wins++
		}
	}

	if report.Matches > 0 {
		n := float64(report.Matches)
		report.WinRate = float64(report.Wins) / n * 100
		report.AvgKills = float64(totalKills) / n
		report.AvgDamage = totalDamage / n
		report.AvgPlacement = float64(totalPlacement) / n
	}

	for _, playerID := range playerOrder {
		pr := playerReports[playerID]
		pr.Handle = handles[playerID]
		report.Players = append(report.Players, *pr)

		// First player to reach the top average keeps the slot on ties:
		// playerOrder preserves insertion order of the underlying rows.
		if report.TopPerformer == nil || pr.AvgKills > report.TopPerformer.AvgKills {
			top := *pr
			report.TopPerformer = &top
		}
	}

	return report, nil
}

func (s *service) Player(ctx context.Context, playerID, month string) (*PlayerReport, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgPlayerRequired, domain.ErrInvalidInput)
	}
	if month != "" && !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}

	player, err := s.roster.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPlayerFailed, err)
	}

	perfs, err := s.perf.ListPerformances(ctx, repository.PerformanceFilter{PlayerID: playerID, Month: month})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPlayerFailed, err)
	}

	reports, _ := aggregateByPlayer(perfs)
	report, ok := reports[playerID]
	if !ok {
		report = &PlayerReport{PlayerID: playerID}
	}
	report.Handle = player.Handle

	return report, nil
}

// aggregateByPlayer folds performance rows into per-player reports in a
// single pass, returning insertion order alongside for stable tie-breaks.
func aggregateByPlayer(perfs []domain.MatchPerformance) (map[string]*PlayerReport, []string) {
	reports := make(map[string]*PlayerReport)
	var order []string

	type totals struct {
		damage   float64
		survival float64
	}
	sums := make(map[string]*totals)

	for _, p := range perfs {
		report, ok := reports[p.PlayerID]
		if !ok {
			report = &PlayerReport{PlayerID: p.PlayerID}
			reports[p.PlayerID] = report
			sums[p.PlayerID] = &totals{}
			order = append(order, p.PlayerID)
		}
		sum := sums[p.PlayerID]

		report.Matches++
		report.TotalKills += p.Kills
		sum.damage += p.Damage
		sum.survival += p.SurvivalTime
		if p.Won {
			report.Wins++
		}
		if p.Placement > 0 && (report.BestPlace == 0 || p.Placement < report.BestPlace) {
			report.BestPlace = p.Placement
		}
	}

	for playerID, report := range reports {
		n := float64(report.Matches)
		sum := sums[playerID]
		report.WinRate = float64(report.Wins) / n * 100
		report.AvgKills = float64(report.TotalKills) / n
		report.AvgDamage = sum.damage / n
		report.AvgSurvival = sum.survival / n
	}

	return reports, order
}
