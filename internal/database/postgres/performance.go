package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/repository"
)

type performanceRepository struct {
	db *pgxpool.Pool
}

// NewPerformanceRepository creates a new PostgreSQL match performance repository
func NewPerformanceRepository(db *pgxpool.Pool) repository.Performance {
	return &performanceRepository{db: db}
}

func (r *performanceRepository) InsertPerformance(ctx context.Context, perf *domain.MatchPerformance) error {
	query := `
		INSERT INTO match_performances
			(id, team_id, player_id, month, match_date, tournament, kills, damage, survival_time, placement, won)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		perf.ID, perf.TeamID, perf.PlayerID, perf.Month, perf.MatchDate, perf.Tournament,
		perf.Kills, perf.Damage, perf.SurvivalTime, perf.Placement, perf.Won,
	).Scan(&perf.CreatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrPlayerNotFound
	}
	return err
}

func (r *performanceRepository) ListPerformances(ctx context.Context, filter repository.PerformanceFilter) ([]domain.MatchPerformance, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, team_id, player_id, month, match_date, tournament, kills, damage, survival_time, placement, won, created_at
		FROM match_performances
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.TeamID != "" {
		fmt.Fprintf(&queryBuilder, " AND team_id = $%d", argNum)
		args = append(args, filter.TeamID)
		argNum++
	}

	if filter.PlayerID != "" {
		fmt.Fprintf(&queryBuilder, " AND player_id = $%d", argNum)
		args = append(args, filter.PlayerID)
		argNum++
	}

	if filter.Month != "" {
		fmt.Fprintf(&queryBuilder, " AND month = $%d", argNum)
		args = append(args, filter.Month)
		argNum++
	}

	// Insertion order matters downstream: analytics tie-breaks rely on it.
	queryBuilder.WriteString(" ORDER BY created_at ASC, id ASC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perfs []domain.MatchPerformance
	for rows.Next() {
		var p domain.MatchPerformance
		if err := rows.Scan(&p.ID, &p.TeamID, &p.PlayerID, &p.Month, &p.MatchDate, &p.Tournament,
			&p.Kills, &p.Damage, &p.SurvivalTime, &p.Placement, &p.Won, &p.CreatedAt); err != nil {
			return nil, err
		}
		perfs = append(perfs, p)
	}
	return perfs, rows.Err()
}
