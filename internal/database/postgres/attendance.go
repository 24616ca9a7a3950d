package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/repository"
)

type attendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new PostgreSQL attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) repository.Attendance {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) InsertAttendance(ctx context.Context, record *domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (id, team_id, player_id, slot_date, month, present, note, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		record.ID, record.TeamID, record.PlayerID, record.SlotDate, record.Month,
		record.Present, record.Note, record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrPlayerNotFound
	}
	return err
}

func (r *attendanceRepository) GetAttendance(ctx context.Context, recordID string) (*domain.AttendanceRecord, error) {
	query := `
		SELECT id, team_id, player_id, slot_date, month, present, note, status, verified_by, created_at, updated_at
		FROM attendance_records WHERE id = $1
	`

	var a domain.AttendanceRecord
	err := r.db.QueryRow(ctx, query, recordID).Scan(
		&a.ID, &a.TeamID, &a.PlayerID, &a.SlotDate, &a.Month, &a.Present, &a.Note,
		&a.Status, &a.VerifiedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *attendanceRepository) UpdateAttendanceStatus(ctx context.Context, recordID string, status domain.AttendanceStatus, verifiedBy string) error {
	query := `
		UPDATE attendance_records
		SET status = $2, verified_by = $3
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, recordID, status, verifiedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepository) ListAttendanceByTeamMonth(ctx context.Context, teamID, month string) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT id, team_id, player_id, slot_date, month, present, note, status, verified_by, created_at, updated_at
		FROM attendance_records
		WHERE team_id = $1 AND month = $2
		ORDER BY slot_date ASC
	`

	rows, err := r.db.Query(ctx, query, teamID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var a domain.AttendanceRecord
		if err := rows.Scan(&a.ID, &a.TeamID, &a.PlayerID, &a.SlotDate, &a.Month, &a.Present, &a.Note,
			&a.Status, &a.VerifiedBy, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
