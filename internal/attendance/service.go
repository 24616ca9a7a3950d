package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/event"
	"github.com/raptorsgg/orgdash/internal/logger"
	"github.com/raptorsgg/orgdash/internal/repository"
)

// Service defines the interface for attendance operations
type Service interface {
	Record(ctx context.Context, record domain.AttendanceRecord) (domain.AttendanceRecord, error)
	Review(ctx context.Context, recordID string, approve bool, verifiedBy string) (*domain.AttendanceRecord, error)
	Summary(ctx context.Context, teamID, month string) (*domain.AttendanceSummary, error)
}

type service struct {
	repo     repository.Attendance
	roster   repository.Roster
	eventBus event.Bus
}

// NewService creates a new attendance service
func NewService(repo repository.Attendance, roster repository.Roster, eventBus event.Bus) Service {
	return &service{repo: repo, roster: roster, eventBus: eventBus}
}

func (s *service) Record(ctx context.Context, record domain.AttendanceRecord) (domain.AttendanceRecord, error) {
	log := logger.FromContext(ctx)

	if record.TeamID == "" {
		return domain.AttendanceRecord{}, fmt.Errorf("%s: %w", ErrMsgTeamRequired, domain.ErrInvalidInput)
	}
	if record.PlayerID == "" {
		return domain.AttendanceRecord{}, fmt.Errorf("%s: %w", ErrMsgPlayerRequired, domain.ErrInvalidInput)
	}
	if record.SlotDate.IsZero() {
		return domain.AttendanceRecord{}, fmt.Errorf("%s: %w", ErrMsgSlotRequired, domain.ErrInvalidInput)
	}

	if _, err := s.roster.GetPlayer(ctx, record.PlayerID); err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf(ErrMsgRecordFailed, err)
	}

	record.ID = uuid.NewString()
	record.Month = domain.MonthOf(record.SlotDate)
	record.Status = domain.AttendancePending
	record.VerifiedBy = ""
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	if err := s.repo.InsertAttendance(ctx, &record); err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf(ErrMsgRecordFailed, err)
	}

	log.Info(LogMsgAttendanceRecorded,
		"record_id", record.ID,
		"team_id", record.TeamID,
		"player_id", record.PlayerID,
		"present", record.Present)

	return record, nil
}

// Review moves a pending record to verified or rejected. Records already
// reviewed cannot change state again.
func (s *service) Review(ctx context.Context, recordID string, approve bool, verifiedBy string) (*domain.AttendanceRecord, error) {
	log := logger.FromContext(ctx)

	record, err := s.repo.GetAttendance(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgVerifyFailed, err)
	}

	if record.Status != domain.AttendancePending {
		return nil, domain.ErrAlreadyVerified
	}

	status := domain.AttendanceRejected
	if approve {
		status = domain.AttendanceVerified
	}

	if err := s.repo.UpdateAttendanceStatus(ctx, recordID, status, verifiedBy); err != nil {
		return nil, fmt.Errorf(ErrMsgVerifyFailed, err)
	}

	record.Status = status
	record.VerifiedBy = verifiedBy
	record.UpdatedAt = time.Now()

	log.Info(LogMsgAttendanceReviewed, "record_id", recordID, "status", status, "verified_by", verifiedBy)

	if status == domain.AttendanceVerified {
		s.checkLowRate(ctx, record.TeamID, record.Month)
	}

	return record, nil
}

// Summary aggregates a team-month. Only verified records count toward the
// attendance rate; pending rows are reported separately.
func (s *service) Summary(ctx context.Context, teamID, month string) (*domain.AttendanceSummary, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgTeamRequired, domain.ErrInvalidInput)
	}
	if !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}

	records, err := s.repo.ListAttendanceByTeamMonth(ctx, teamID, month)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSummaryFailed, err)
	}

	players, err := s.roster.ListPlayersByTeam(ctx, teamID, false)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSummaryFailed, err)
	}
	handles := make(map[string]string, len(players))
	for _, p := range players {
		handles[p.ID] = p.Handle
	}

	summary := &domain.AttendanceSummary{
		TeamID: teamID,
		Month:  month,
	}

	type playerAgg struct {
		tracked int
		present int
	}
	perPlayer := make(map[string]*playerAgg)
	var playerOrder []string

	for _, r := range records {
		switch r.Status {
		case domain.AttendancePending:
			summary.PendingCount++
			continue
		case domain.AttendanceRejected:
			continue
		}

		summary.TotalSlots++
		agg, ok := perPlayer[r.PlayerID]
		if !ok {
			agg = &playerAgg{}
			perPlayer[r.PlayerID] = agg
			playerOrder = append(playerOrder, r.PlayerID)
		}
		agg.tracked++
		if r.Present {
			summary.PresentCount++
			agg.present++
		} else {
			summary.AbsentCount++
		}
	}

	if summary.TotalSlots > 0 {
		summary.AttendanceRate = float64(summary.PresentCount) / float64(summary.TotalSlots) * 100
	}

	for _, playerID := range playerOrder {
		agg := perPlayer[playerID]
		pa := domain.PlayerAttendance{
			PlayerID:     playerID,
			Handle:       handles[playerID],
			SlotsTracked: agg.tracked,
			Present:      agg.present,
		}
		if agg.tracked > 0 {
			pa.Rate = float64(agg.present) / float64(agg.tracked) * 100
		}
		summary.PerPlayer = append(summary.PerPlayer, pa)
	}

	return summary, nil
}

// checkLowRate publishes a flag event when the verified attendance rate for
// the team-month drops below the threshold. Failures only log; attendance
// review never fails because of notification problems.
func (s *service) checkLowRate(ctx context.Context, teamID, month string) {
	log := logger.FromContext(ctx)

	summary, err := s.Summary(ctx, teamID, month)
	if err != nil {
		log.Warn(LogMsgFlagPublishFailed, "team_id", teamID, "month", month, "error", err)
		return
	}
	if summary.TotalSlots == 0 || summary.AttendanceRate >= LowRateThreshold {
		return
	}

	log.Info(LogMsgLowRateFlagged, "team_id", teamID, "month", month, "rate", summary.AttendanceRate)

	evt := event.NewAttendanceFlaggedEvent(event.AttendanceFlaggedPayloadV1{
		TeamID:         teamID,
		Month:          month,
		AttendanceRate: summary.AttendanceRate,
	})
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgFlagPublishFailed, "team_id", teamID, "error", err)
	}
}
