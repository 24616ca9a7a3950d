package repository

import (
	"context"

	"github.com/raptorsgg/orgdash/internal/domain"
)

// Recruitment defines the interface for application persistence
type Recruitment interface {
	InsertApplication(ctx context.Context, app *domain.Application) error
	GetApplicationByReference(ctx context.Context, reference string) (*domain.Application, error)
	ListApplications(ctx context.Context, status domain.ApplicationStatus, limit int) ([]domain.Application, error)
	UpdateApplicationStatus(ctx context.Context, reference string, status domain.ApplicationStatus, reviewNote, reviewedBy string) error
}
