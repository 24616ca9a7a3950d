package repository

import (
	"context"

	"github.com/raptorsgg/orgdash/internal/domain"
)

// Roster defines the interface for team and player persistence
type Roster interface {
	CreateTeam(ctx context.Context, team *domain.Team) error
	GetTeam(ctx context.Context, teamID string) (*domain.Team, error)
	GetTeamByName(ctx context.Context, name string) (*domain.Team, error)
	ListTeams(ctx context.Context, activeOnly bool) ([]domain.Team, error)
	UpdateTeam(ctx context.Context, team *domain.Team) error
	DeactivateTeam(ctx context.Context, teamID string) error

	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID string, activeOnly bool) ([]domain.Player, error)
	DeactivatePlayer(ctx context.Context, playerID string) error
}
