package recruitment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/event"
	"github.com/raptorsgg/orgdash/internal/logger"
	"github.com/raptorsgg/orgdash/internal/repository"
)

// validTransitions defines the application review pipeline. Terminal states
// have no outgoing edges.
var validTransitions = map[domain.ApplicationStatus][]domain.ApplicationStatus{
	domain.ApplicationReceived:  {domain.ApplicationReviewing, domain.ApplicationAccepted, domain.ApplicationRejected},
	domain.ApplicationReviewing: {domain.ApplicationAccepted, domain.ApplicationRejected},
}

// Service defines the interface for recruitment operations
type Service interface {
	Submit(ctx context.Context, app domain.Application) (domain.Application, error)
	GetByReference(ctx context.Context, reference string) (*domain.Application, error)
	List(ctx context.Context, status domain.ApplicationStatus, limit int) ([]domain.Application, error)
	Review(ctx context.Context, reference string, status domain.ApplicationStatus, note, reviewedBy string) (*domain.Application, error)
}

type service struct {
	repo     repository.Recruitment
	eventBus event.Bus
	titler   cases.Caser
}

// NewService creates a new recruitment service
func NewService(repo repository.Recruitment, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		eventBus: eventBus,
		titler:   cases.Title(language.Und),
	}
}

// Submit accepts a public application, normalizes the applicant name, and
// assigns a reference code the applicant can quote later.
func (s *service) Submit(ctx context.Context, app domain.Application) (domain.Application, error) {
	log := logger.FromContext(ctx)

	app.FullName = s.titler.String(strings.TrimSpace(app.FullName))
	app.Handle = strings.TrimSpace(app.Handle)
	app.Email = strings.ToLower(strings.TrimSpace(app.Email))

	if app.FullName == "" {
		return domain.Application{}, fmt.Errorf("%s: %w", ErrMsgFullNameRequired, domain.ErrInvalidInput)
	}
	if app.Handle == "" {
		return domain.Application{}, fmt.Errorf("%s: %w", ErrMsgHandleRequired, domain.ErrInvalidInput)
	}
	if app.Email == "" {
		return domain.Application{}, fmt.Errorf("%s: %w", ErrMsgEmailRequired, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(app.Game) == "" {
		return domain.Application{}, fmt.Errorf("%s: %w", ErrMsgGameRequired, domain.ErrInvalidInput)
	}

	reference, err := gonanoid.Generate(ReferenceAlphabet, ReferenceLength)
	if err != nil {
		return domain.Application{}, fmt.Errorf(ErrMsgSubmitFailed, err)
	}

	app.ID = uuid.NewString()
	app.Reference = reference
	app.Status = domain.ApplicationReceived
	app.SubmittedAt = time.Now()
	app.UpdatedAt = app.SubmittedAt

	if err := s.repo.InsertApplication(ctx, &app); err != nil {
		return domain.Application{}, fmt.Errorf(ErrMsgSubmitFailed, err)
	}

	log.Info(LogMsgApplicationReceived, "reference", app.Reference, "game", app.Game, "role", app.Role)

	evt := event.NewApplicationReceivedEvent(event.ApplicationReceivedPayloadV1{
		Reference: app.Reference,
		Handle:    app.Handle,
		Game:      app.Game,
		Role:      app.Role,
	})
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgEventPublishFailed, "reference", app.Reference, "error", err)
	}

	return app, nil
}

func (s *service) GetByReference(ctx context.Context, reference string) (*domain.Application, error) {
	app, err := s.repo.GetApplicationByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetFailed, err)
	}
	return app, nil
}

func (s *service) List(ctx context.Context, status domain.ApplicationStatus, limit int) ([]domain.Application, error) {
	if status != "" && !status.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	apps, err := s.repo.ListApplications(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return apps, nil
}

func (s *service) Review(ctx context.Context, reference string, status domain.ApplicationStatus, note, reviewedBy string) (*domain.Application, error) {
	log := logger.FromContext(ctx)

	if !status.IsValid() || status == domain.ApplicationReceived {
		return nil, domain.ErrInvalidTransition
	}

	app, err := s.repo.GetApplicationByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReviewFailed, err)
	}

	if !transitionAllowed(app.Status, status) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.repo.UpdateApplicationStatus(ctx, reference, status, note, reviewedBy); err != nil {
		return nil, fmt.Errorf(ErrMsgReviewFailed, err)
	}

	app.Status = status
	app.ReviewNote = note
	app.ReviewedBy = reviewedBy
	app.UpdatedAt = time.Now()

	log.Info(LogMsgApplicationReviewed, "reference", reference, "status", status, "reviewed_by", reviewedBy)
	return app, nil
}

func transitionAllowed(from, to domain.ApplicationStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
