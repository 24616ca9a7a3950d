package repository

import (
	"context"

	"github.com/raptorsgg/orgdash/internal/domain"
)

// Attendance defines the interface for attendance record persistence
type Attendance interface {
	InsertAttendance(ctx context.Context, record *domain.AttendanceRecord) error
	GetAttendance(ctx context.Context, recordID string) (*domain.AttendanceRecord, error)
	UpdateAttendanceStatus(ctx context.Context, recordID string, status domain.AttendanceStatus, verifiedBy string) error
	ListAttendanceByTeamMonth(ctx context.Context, teamID, month string) ([]domain.AttendanceRecord, error)
}
