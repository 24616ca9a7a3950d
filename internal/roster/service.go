package roster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/logger"
	"github.com/raptorsgg/orgdash/internal/repository"
)

// Service defines the interface for roster operations
type Service interface {
	CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
	GetTeam(ctx context.Context, teamID string) (*domain.Team, error)
	ListTeams(ctx context.Context, activeOnly bool) ([]domain.Team, error)
	UpdateTeam(ctx context.Context, teamID string, update TeamUpdate) (*domain.Team, error)
	DeactivateTeam(ctx context.Context, teamID string) error

	AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	ListPlayers(ctx context.Context, teamID, roleFilter string, activeOnly bool) ([]domain.Player, error)
	RemovePlayer(ctx context.Context, playerID string) error
}

// TeamUpdate carries the mutable team fields. Nil pointers leave the
// corresponding field untouched.
type TeamUpdate struct {
	Name       *string
	Region     *string
	Tier       *domain.Tier
	TrialPhase *domain.TrialPhase
}

type service struct {
	repo repository.Roster
}

// NewService creates a new roster service
func NewService(repo repository.Roster) Service {
	return &service{repo: repo}
}

func (s *service) CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	log := logger.FromContext(ctx)

	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return domain.Team{}, fmt.Errorf("%s: %w", ErrMsgTeamNameRequired, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(team.Game) == "" {
		return domain.Team{}, fmt.Errorf("%s: %w", ErrMsgGameRequired, domain.ErrInvalidInput)
	}
	if !team.CurrentTier.IsValid() {
		return domain.Team{}, domain.ErrInvalidTier
	}
	if team.TrialPhase == "" {
		team.TrialPhase = domain.TrialPhaseNone
	}
	if !team.TrialPhase.IsValid() {
		return domain.Team{}, domain.ErrInvalidInput
	}

	team.ID = uuid.NewString()
	team.Active = true
	team.CreatedAt = time.Now()
	team.UpdatedAt = team.CreatedAt

	if err := s.repo.CreateTeam(ctx, &team); err != nil {
		return domain.Team{}, fmt.Errorf(ErrMsgCreateTeamFailed, err)
	}

	log.Info(LogMsgTeamCreated, "team_id", team.ID, "name", team.Name, "tier", team.CurrentTier)
	return team, nil
}

func (s *service) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetTeamFailed, err)
	}
	return team, nil
}

func (s *service) ListTeams(ctx context.Context, activeOnly bool) ([]domain.Team, error) {
	teams, err := s.repo.ListTeams(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTeamsFailed, err)
	}
	return teams, nil
}

func (s *service) UpdateTeam(ctx context.Context, teamID string, update TeamUpdate) (*domain.Team, error) {
	log := logger.FromContext(ctx)

	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetTeamFailed, err)
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: %w", ErrMsgTeamNameRequired, domain.ErrInvalidInput)
		}
		team.Name = name
	}
	if update.Region != nil {
		team.Region = *update.Region
	}
	if update.Tier != nil {
		if !update.Tier.IsValid() {
			return nil, domain.ErrInvalidTier
		}
		team.CurrentTier = *update.Tier
	}
	if update.TrialPhase != nil {
		if !update.TrialPhase.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		team.TrialPhase = *update.TrialPhase
	}
	team.UpdatedAt = time.Now()

	if err := s.repo.UpdateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateTeamFailed, err)
	}

	log.Info(LogMsgTeamUpdated, "team_id", team.ID, "tier", team.CurrentTier)
	return team, nil
}

func (s *service) DeactivateTeam(ctx context.Context, teamID string) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeactivateTeam(ctx, teamID); err != nil {
		return fmt.Errorf(ErrMsgUpdateTeamFailed, err)
	}

	log.Info(LogMsgTeamDeactivated, "team_id", teamID)
	return nil
}

func (s *service) AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	log := logger.FromContext(ctx)

	player.Handle = strings.TrimSpace(player.Handle)
	if player.Handle == "" {
		return domain.Player{}, fmt.Errorf("%s: %w", ErrMsgHandleRequired, domain.ErrInvalidInput)
	}

	// Team must exist and be active before a player can join it.
	team, err := s.repo.GetTeam(ctx, player.TeamID)
	if err != nil {
		return domain.Player{}, fmt.Errorf(ErrMsgGetTeamFailed, err)
	}
	if !team.Active {
		return domain.Player{}, fmt.Errorf("team %s is inactive: %w", team.ID, domain.ErrInvalidInput)
	}

	player.ID = uuid.NewString()
	player.Active = true
	if player.JoinedAt.IsZero() {
		player.JoinedAt = time.Now()
	}
	player.CreatedAt = time.Now()

	if err := s.repo.CreatePlayer(ctx, &player); err != nil {
		return domain.Player{}, fmt.Errorf(ErrMsgCreatePlayerFailed, err)
	}

	log.Info(LogMsgPlayerAdded, "player_id", player.ID, "team_id", player.TeamID, "handle", player.Handle)
	return player, nil
}

func (s *service) ListPlayers(ctx context.Context, teamID, roleFilter string, activeOnly bool) ([]domain.Player, error) {
	players, err := s.repo.ListPlayersByTeam(ctx, teamID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListPlayersFailed, err)
	}

	if roleFilter == "" {
		return players, nil
	}

	filtered := make([]domain.Player, 0, len(players))
	for _, p := range players {
		if strings.EqualFold(p.Role, roleFilter) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *service) RemovePlayer(ctx context.Context, playerID string) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeactivatePlayer(ctx, playerID); err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}

	log.Info(LogMsgPlayerDeactivated, "player_id", playerID)
	return nil
}
