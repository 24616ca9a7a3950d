package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/event"
	"github.com/raptorsgg/orgdash/internal/logger"
	"github.com/raptorsgg/orgdash/internal/repository"
)

// Log message constants
const (
	LogMsgOutcomeComputed     = "Monthly outcome computed"
	LogMsgOutcomePublishFail  = "Failed to publish outcome event"
	LogMsgFallbackRecompute   = "No persisted records for month, recomputing from expenses"
	LogMsgTierRateUpdated     = "Tier rate updated"
	LogMsgMonthlyCloseStarted = "Monthly close recompute started"
	LogMsgMonthlyCloseDone    = "Monthly close recompute finished"
)

// Service defines the interface for finance operations
type Service interface {
	// SubmitMonthly computes and persists the outcome row for one team-month.
	// Resubmitting the same (team, month) overwrites the previous row.
	SubmitMonthly(ctx context.Context, input domain.MonthlyInput) (*domain.MonthlyRecord, error)
	GetMonthly(ctx context.Context, teamID, month string) (*domain.MonthlyRecord, error)
	// ListMonthly returns persisted rows for a month, falling back to an
	// on-the-fly recompute from raw expense records when none exist.
	ListMonthly(ctx context.Context, month string) ([]domain.MonthlyRecord, error)

	RecordExpense(ctx context.Context, expense domain.ExpenseRecord) (domain.ExpenseRecord, error)
	TierRates(ctx context.Context) ([]domain.TierRate, error)
	SetTierRate(ctx context.Context, rate domain.TierRate) error

	// CloseMonth recomputes and persists outcomes for every active team for
	// the given month. Run by the scheduled monthly close worker.
	CloseMonth(ctx context.Context, month string) (int, error)

	Policy() Policy
}

type service struct {
	repo      repository.Finance
	roster    repository.Roster
	eventBus  event.Bus
	policy    Policy
	rateCache *lru.Cache[domain.Tier, domain.TierRate]
}

// NewService creates a new finance service
func NewService(repo repository.Finance, roster repository.Roster, eventBus event.Bus, policy Policy) (Service, error) {
	cache, err := lru.New[domain.Tier, domain.TierRate](TierRateCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create tier rate cache: %w", err)
	}

	return &service{
		repo:      repo,
		roster:    roster,
		eventBus:  eventBus,
		policy:    policy,
		rateCache: cache,
	}, nil
}

func (s *service) Policy() Policy {
	return s.policy
}

func (s *service) SubmitMonthly(ctx context.Context, input domain.MonthlyInput) (*domain.MonthlyRecord, error) {
	log := logger.FromContext(ctx)

	if input.TeamID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgTeamIDRequired, domain.ErrInvalidInput)
	}
	if !domain.ValidMonth(input.Month) {
		return nil, domain.ErrInvalidMonth
	}

	team, err := s.roster.GetTeam(ctx, input.TeamID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetTeamFailed, err)
	}

	// Roster state fills anything the caller left blank so submissions only
	// need the numbers.
	input.TeamName = team.Name
	if input.CurrentTier == "" {
		input.CurrentTier = team.CurrentTier
	}
	if !input.CurrentTier.IsValid() {
		return nil, domain.ErrInvalidTier
	}
	if input.TrialPhase == "" {
		input.TrialPhase = team.TrialPhase
	}

	rates, err := s.tierRateTable(ctx)
	if err != nil {
		return nil, err
	}
	input.TierRates = rates

	outcome := ComputeMonthlyOutcome(input, s.policy)
	record := mergeRecord(input, outcome)

	if err := s.repo.UpsertMonthlyRecord(ctx, record); err != nil {
		return nil, fmt.Errorf(ErrMsgUpsertRecordFailed, err)
	}

	log.Info(LogMsgOutcomeComputed,
		"team_id", input.TeamID,
		"month", input.Month,
		"win_pct", outcome.WinPercentage,
		"status", outcome.StatusUpdate,
		"tier", outcome.UpdatedTier,
		"surplus", outcome.Incentives.Surplus)

	s.publishOutcome(ctx, record)

	return record, nil
}

func (s *service) GetMonthly(ctx context.Context, teamID, month string) (*domain.MonthlyRecord, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgTeamIDRequired, domain.ErrInvalidInput)
	}
	if !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}

	record, err := s.repo.GetMonthlyRecord(ctx, teamID, month)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRecordsFailed, err)
	}
	return record, nil
}

func (s *service) ListMonthly(ctx context.Context, month string) ([]domain.MonthlyRecord, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}

	records, err := s.repo.ListMonthlyRecords(ctx, month)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRecordsFailed, err)
	}
	if len(records) > 0 {
		return records, nil
	}

	// Fallback path: no persisted rows for this month yet, so derive
	// non-persisted outcomes from the raw expense entries.
	log.Info(LogMsgFallbackRecompute, "month", month)
	return s.recomputeFromExpenses(ctx, month)
}

func (s *service) RecordExpense(ctx context.Context, expense domain.ExpenseRecord) (domain.ExpenseRecord, error) {
	if expense.TeamID == "" {
		return domain.ExpenseRecord{}, fmt.Errorf("%s: %w", ErrMsgTeamIDRequired, domain.ErrInvalidInput)
	}
	if !domain.ValidMonth(expense.Month) {
		return domain.ExpenseRecord{}, domain.ErrInvalidMonth
	}

	expense.ID = uuid.NewString()

	if err := s.repo.InsertExpense(ctx, &expense); err != nil {
		return domain.ExpenseRecord{}, fmt.Errorf(ErrMsgListExpensesFailed, err)
	}
	return expense, nil
}

func (s *service) TierRates(ctx context.Context) ([]domain.TierRate, error) {
	rates, err := s.repo.GetTierRates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetTierRatesFailed, err)
	}
	return rates, nil
}

func (s *service) SetTierRate(ctx context.Context, rate domain.TierRate) error {
	log := logger.FromContext(ctx)

	if !rate.Tier.IsValid() {
		return domain.ErrInvalidTier
	}
	if rate.CostPerSlot <= 0 || rate.PricePerSlot <= 0 {
		return fmt.Errorf("tier rates must be positive: %w", domain.ErrInvalidInput)
	}

	rate.UpdatedAt = time.Now()
	if err := s.repo.UpsertTierRate(ctx, &rate); err != nil {
		return fmt.Errorf(ErrMsgPutTierRateFailed, err)
	}

	// Keep the cache coherent with the write instead of waiting for it to
	// age out.
	s.rateCache.Add(rate.Tier, rate)

	log.Info(LogMsgTierRateUpdated, "tier", rate.Tier, "cost_per_slot", rate.CostPerSlot)
	return nil
}

func (s *service) CloseMonth(ctx context.Context, month string) (int, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidMonth(month) {
		return 0, domain.ErrInvalidMonth
	}

	log.Info(LogMsgMonthlyCloseStarted, "month", month)

	inputs, err := s.expenseInputs(ctx, month)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, input := range inputs {
		// Skip teams that already have a manager-submitted row; the close
		// job only fills gaps, it never overwrites manual submissions.
		if _, err := s.repo.GetMonthlyRecord(ctx, input.TeamID, month); err == nil {
			continue
		}

		if _, err := s.SubmitMonthly(ctx, input); err != nil {
			return closed, err
		}
		closed++
	}

	log.Info(LogMsgMonthlyCloseDone, "month", month, "teams_closed", closed)
	return closed, nil
}

// tierRateTable assembles the per-tier default cost map, preferring cached
// rows and falling back to one repository read for the misses.
func (s *service) tierRateTable(ctx context.Context) (map[domain.Tier]float64, error) {
	table := make(map[domain.Tier]float64, len(domain.AllTiers()))

	missing := false
	for _, tier := range domain.AllTiers() {
		if rate, ok := s.rateCache.Get(tier); ok {
			table[tier] = rate.CostPerSlot
		} else {
			missing = true
		}
	}
	if !missing {
		return table, nil
	}

	rates, err := s.repo.GetTierRates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetTierRatesFailed, err)
	}
	for _, rate := range rates {
		s.rateCache.Add(rate.Tier, rate)
		table[rate.Tier] = rate.CostPerSlot
	}

	return table, nil
}

// recomputeFromExpenses derives outcomes for a month straight from expense
// rows. Results are returned, not persisted; the monthly close worker or a
// manual submission writes the durable row.
func (s *service) recomputeFromExpenses(ctx context.Context, month string) ([]domain.MonthlyRecord, error) {
	inputs, err := s.expenseInputs(ctx, month)
	if err != nil {
		return nil, err
	}

	records := make([]domain.MonthlyRecord, 0, len(inputs))
	for _, input := range inputs {
		outcome := ComputeMonthlyOutcome(input, s.policy)
		records = append(records, *mergeRecord(input, outcome))
	}
	return records, nil
}

// expenseInputs groups a month's expense rows by team and builds calculator
// inputs from the totals plus roster state.
func (s *service) expenseInputs(ctx context.Context, month string) ([]domain.MonthlyInput, error) {
	expenses, err := s.repo.ListExpenses(ctx, month)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListExpensesFailed, err)
	}
	if len(expenses) == 0 {
		return nil, nil
	}

	rates, err := s.tierRateTable(ctx)
	if err != nil {
		return nil, err
	}

	byTeam := make(map[string]*domain.MonthlyInput)
	var teamOrder []string

	for _, exp := range expenses {
		input, ok := byTeam[exp.TeamID]
		if !ok {
			team, err := s.roster.GetTeam(ctx, exp.TeamID)
			if err != nil {
				return nil, fmt.Errorf(ErrMsgGetTeamFailed, err)
			}
			input = &domain.MonthlyInput{
				TeamID:      team.ID,
				TeamName:    team.Name,
				Month:       month,
				CurrentTier: team.CurrentTier,
				TrialPhase:  team.TrialPhase,
				TierRates:   rates,
			}
			byTeam[exp.TeamID] = input
			teamOrder = append(teamOrder, exp.TeamID)
		}

		input.SlotsPlayed += exp.SlotsPlayed
		input.SlotsWon += exp.SlotsWon
		input.TournamentWinnings += exp.TournamentWinnings
		// Per-slot figures: the latest non-zero entry wins.
		if exp.SlotPrice > 0 {
			input.SlotPricePerSlot = exp.SlotPrice
		}
		if exp.SlotCost > 0 {
			input.SlotCostPerSlot = exp.SlotCost
		}
	}

	inputs := make([]domain.MonthlyInput, 0, len(teamOrder))
	for _, teamID := range teamOrder {
		inputs = append(inputs, *byTeam[teamID])
	}
	return inputs, nil
}

func (s *service) publishOutcome(ctx context.Context, record *domain.MonthlyRecord) {
	evt := event.NewOutcomeComputedEvent(event.OutcomeComputedPayloadV1{
		TeamID:            record.TeamID,
		TeamName:          record.TeamName,
		Month:             record.Month,
		WinPercentage:     record.WinPercentage,
		StatusUpdate:      string(record.StatusUpdate),
		UpdatedTier:       string(record.UpdatedTier),
		SponsorshipStatus: string(record.SponsorshipStatus),
		Surplus:           record.Incentives.Surplus,
		TeamShare:         record.Incentives.TeamShare,
	})
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgOutcomePublishFail, "team_id", record.TeamID, "error", err)
	}
}

func mergeRecord(input domain.MonthlyInput, outcome domain.MonthlyOutcome) *domain.MonthlyRecord {
	return &domain.MonthlyRecord{
		TeamID:             input.TeamID,
		TeamName:           input.TeamName,
		Month:              input.Month,
		CurrentTier:        input.CurrentTier,
		SlotsPlayed:        input.SlotsPlayed,
		SlotsWon:           input.SlotsWon,
		SlotPricePerSlot:   input.SlotPricePerSlot,
		SlotCostPerSlot:    input.SlotCostPerSlot,
		TournamentWinnings: input.TournamentWinnings,
		TrialPhase:         input.TrialPhase,
		WinPercentage:      outcome.WinPercentage,
		UpdatedTier:        outcome.UpdatedTier,
		StatusUpdate:       outcome.StatusUpdate,
		SponsorshipStatus:  outcome.SponsorshipStatus,
		Trial:              outcome.Trial,
		Incentives:         outcome.Incentives,
		ComputedAt:         time.Now(),
	}
}
