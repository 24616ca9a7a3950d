package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/repository"
)

type recruitmentRepository struct {
	db *pgxpool.Pool
}

// NewRecruitmentRepository creates a new PostgreSQL recruitment repository
func NewRecruitmentRepository(db *pgxpool.Pool) repository.Recruitment {
	return &recruitmentRepository{db: db}
}

const applicationColumns = `
	id, reference, full_name, handle, email, discord_id, game, role, experience,
	status, review_note, reviewed_by, submitted_at, updated_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.Reference, &a.FullName, &a.Handle, &a.Email, &a.DiscordID,
		&a.Game, &a.Role, &a.Experience, &a.Status, &a.ReviewNote, &a.ReviewedBy,
		&a.SubmittedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *recruitmentRepository) InsertApplication(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (id, reference, full_name, handle, email, discord_id, game, role, experience, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING submitted_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		app.ID, app.Reference, app.FullName, app.Handle, app.Email, app.DiscordID,
		app.Game, app.Role, app.Experience, app.Status,
	).Scan(&app.SubmittedAt, &app.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateReference
	}
	return err
}

func (r *recruitmentRepository) GetApplicationByReference(ctx context.Context, reference string) (*domain.Application, error) {
	query := `SELECT` + applicationColumns + ` FROM applications WHERE reference = $1`
	return scanApplication(r.db.QueryRow(ctx, query, reference))
}

func (r *recruitmentRepository) ListApplications(ctx context.Context, status domain.ApplicationStatus, limit int) ([]domain.Application, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT` + applicationColumns + ` FROM applications WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if status != "" {
		fmt.Fprintf(&queryBuilder, " AND status = $%d", argNum)
		args = append(args, status)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY submitted_at DESC")

	if limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *recruitmentRepository) UpdateApplicationStatus(ctx context.Context, reference string, status domain.ApplicationStatus, reviewNote, reviewedBy string) error {
	query := `
		UPDATE applications
		SET status = $2, review_note = $3, reviewed_by = $4
		WHERE reference = $1
	`

	tag, err := r.db.Exec(ctx, query, reference, status, reviewNote, reviewedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}
