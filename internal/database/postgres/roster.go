package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/repository"
)

type rosterRepository struct {
	db *pgxpool.Pool
}

// NewRosterRepository creates a new PostgreSQL roster repository
func NewRosterRepository(db *pgxpool.Pool) repository.Roster {
	return &rosterRepository{db: db}
}

const teamColumns = `id, name, game, region, current_tier, trial_phase, active, created_at, updated_at`

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var t domain.Team
	err := row.Scan(&t.ID, &t.Name, &t.Game, &t.Region, &t.CurrentTier, &t.TrialPhase, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *rosterRepository) CreateTeam(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (id, name, game, region, current_tier, trial_phase, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		team.ID, team.Name, team.Game, team.Region, team.CurrentTier, team.TrialPhase, team.Active,
	).Scan(&team.CreatedAt, &team.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateTeamName
	}
	return err
}

func (r *rosterRepository) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE id = $1`, teamColumns)
	return scanTeam(r.db.QueryRow(ctx, query, teamID))
}

func (r *rosterRepository) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE name = $1`, teamColumns)
	return scanTeam(r.db.QueryRow(ctx, query, name))
}

func (r *rosterRepository) ListTeams(ctx context.Context, activeOnly bool) ([]domain.Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams`, teamColumns)
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Game, &t.Region, &t.CurrentTier, &t.TrialPhase, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *rosterRepository) UpdateTeam(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams
		SET name = $2, game = $3, region = $4, current_tier = $5, trial_phase = $6, active = $7
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		team.ID, team.Name, team.Game, team.Region, team.CurrentTier, team.TrialPhase, team.Active)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateTeamName
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

func (r *rosterRepository) DeactivateTeam(ctx context.Context, teamID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE teams SET active = FALSE WHERE id = $1`, teamID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

func (r *rosterRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (id, team_id, handle, full_name, role, discord_id, active, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		player.ID, player.TeamID, player.Handle, player.FullName, player.Role, player.DiscordID, player.Active, player.JoinedAt,
	).Scan(&player.CreatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrTeamNotFound
	}
	return err
}

func (r *rosterRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	query := `
		SELECT id, team_id, handle, full_name, role, discord_id, active, joined_at, created_at
		FROM players WHERE id = $1
	`

	var p domain.Player
	err := r.db.QueryRow(ctx, query, playerID).Scan(
		&p.ID, &p.TeamID, &p.Handle, &p.FullName, &p.Role, &p.DiscordID, &p.Active, &p.JoinedAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *rosterRepository) ListPlayersByTeam(ctx context.Context, teamID string, activeOnly bool) ([]domain.Player, error) {
	query := `
		SELECT id, team_id, handle, full_name, role, discord_id, active, joined_at, created_at
		FROM players WHERE team_id = $1
	`
	if activeOnly {
		query += ` AND active = TRUE`
	}
	query += ` ORDER BY handle`

	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.TeamID, &p.Handle, &p.FullName, &p.Role, &p.DiscordID, &p.Active, &p.JoinedAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *rosterRepository) DeactivatePlayer(ctx context.Context, playerID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE players SET active = FALSE WHERE id = $1`, playerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint error
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a Postgres FK constraint error
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
