package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/repository"
)

type financeRepository struct {
	db *pgxpool.Pool
}

// NewFinanceRepository creates a new PostgreSQL finance repository
func NewFinanceRepository(db *pgxpool.Pool) repository.Finance {
	return &financeRepository{db: db}
}

const monthlyRecordColumns = `
	team_id, month, team_name, current_tier, slots_played, slots_won,
	slot_price_per_slot, slot_cost_per_slot, tournament_winnings, trial_phase,
	win_percentage, updated_tier, status_update, sponsorship_status,
	trial_extension_granted, trial_extension_weeks,
	monthly_prize_pool, monthly_cost, next_month_tier_cost,
	surplus, org_share, team_share, split_rule, computed_at`

func scanMonthlyRecord(row pgx.Row) (*domain.MonthlyRecord, error) {
	var m domain.MonthlyRecord
	err := row.Scan(
		&m.TeamID, &m.Month, &m.TeamName, &m.CurrentTier, &m.SlotsPlayed, &m.SlotsWon,
		&m.SlotPricePerSlot, &m.SlotCostPerSlot, &m.TournamentWinnings, &m.TrialPhase,
		&m.WinPercentage, &m.UpdatedTier, &m.StatusUpdate, &m.SponsorshipStatus,
		&m.Trial.ExtensionGranted, &m.Trial.ExtensionWeeks,
		&m.Incentives.MonthlyPrizePool, &m.Incentives.MonthlyCost, &m.Incentives.NextMonthTierCost,
		&m.Incentives.Surplus, &m.Incentives.OrgShare, &m.Incentives.TeamShare,
		&m.Incentives.SplitRule, &m.ComputedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *financeRepository) UpsertMonthlyRecord(ctx context.Context, record *domain.MonthlyRecord) error {
	query := `
		INSERT INTO monthly_records (
			team_id, month, team_name, current_tier, slots_played, slots_won,
			slot_price_per_slot, slot_cost_per_slot, tournament_winnings, trial_phase,
			win_percentage, updated_tier, status_update, sponsorship_status,
			trial_extension_granted, trial_extension_weeks,
			monthly_prize_pool, monthly_cost, next_month_tier_cost,
			surplus, org_share, team_share, split_rule, computed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		ON CONFLICT (team_id, month) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			current_tier = EXCLUDED.current_tier,
			slots_played = EXCLUDED.slots_played,
			slots_won = EXCLUDED.slots_won,
			slot_price_per_slot = EXCLUDED.slot_price_per_slot,
			slot_cost_per_slot = EXCLUDED.slot_cost_per_slot,
			tournament_winnings = EXCLUDED.tournament_winnings,
			trial_phase = EXCLUDED.trial_phase,
			win_percentage = EXCLUDED.win_percentage,
			updated_tier = EXCLUDED.updated_tier,
			status_update = EXCLUDED.status_update,
			sponsorship_status = EXCLUDED.sponsorship_status,
			trial_extension_granted = EXCLUDED.trial_extension_granted,
			trial_extension_weeks = EXCLUDED.trial_extension_weeks,
			monthly_prize_pool = EXCLUDED.monthly_prize_pool,
			monthly_cost = EXCLUDED.monthly_cost,
			next_month_tier_cost = EXCLUDED.next_month_tier_cost,
			surplus = EXCLUDED.surplus,
			org_share = EXCLUDED.org_share,
			team_share = EXCLUDED.team_share,
			split_rule = EXCLUDED.split_rule,
			computed_at = EXCLUDED.computed_at
	`

	_, err := r.db.Exec(ctx, query,
		record.TeamID, record.Month, record.TeamName, record.CurrentTier, record.SlotsPlayed, record.SlotsWon,
		record.SlotPricePerSlot, record.SlotCostPerSlot, record.TournamentWinnings, record.TrialPhase,
		record.WinPercentage, record.UpdatedTier, record.StatusUpdate, record.SponsorshipStatus,
		record.Trial.ExtensionGranted, record.Trial.ExtensionWeeks,
		record.Incentives.MonthlyPrizePool, record.Incentives.MonthlyCost, record.Incentives.NextMonthTierCost,
		record.Incentives.Surplus, record.Incentives.OrgShare, record.Incentives.TeamShare,
		record.Incentives.SplitRule, record.ComputedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrTeamNotFound
	}
	return err
}

func (r *financeRepository) GetMonthlyRecord(ctx context.Context, teamID, month string) (*domain.MonthlyRecord, error) {
	query := `SELECT` + monthlyRecordColumns + `
		FROM monthly_records WHERE team_id = $1 AND month = $2`
	return scanMonthlyRecord(r.db.QueryRow(ctx, query, teamID, month))
}

func (r *financeRepository) ListMonthlyRecords(ctx context.Context, month string) ([]domain.MonthlyRecord, error) {
	query := `SELECT` + monthlyRecordColumns + `
		FROM monthly_records WHERE month = $1 ORDER BY team_name`

	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.MonthlyRecord
	for rows.Next() {
		record, err := scanMonthlyRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (r *financeRepository) ListExpenses(ctx context.Context, month string) ([]domain.ExpenseRecord, error) {
	query := `
		SELECT id, team_id, month, slots_played, slots_won, slot_price, slot_cost, tournament_winnings, recorded_at
		FROM expense_records
		WHERE month = $1
		ORDER BY recorded_at ASC
	`

	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.ExpenseRecord
	for rows.Next() {
		var e domain.ExpenseRecord
		if err := rows.Scan(&e.ID, &e.TeamID, &e.Month, &e.SlotsPlayed, &e.SlotsWon,
			&e.SlotPrice, &e.SlotCost, &e.TournamentWinnings, &e.RecordedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *financeRepository) InsertExpense(ctx context.Context, expense *domain.ExpenseRecord) error {
	query := `
		INSERT INTO expense_records (id, team_id, month, slots_played, slots_won, slot_price, slot_cost, tournament_winnings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING recorded_at
	`

	err := r.db.QueryRow(ctx, query,
		expense.ID, expense.TeamID, expense.Month, expense.SlotsPlayed, expense.SlotsWon,
		expense.SlotPrice, expense.SlotCost, expense.TournamentWinnings,
	).Scan(&expense.RecordedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrTeamNotFound
	}
	return err
}

func (r *financeRepository) GetTierRates(ctx context.Context) ([]domain.TierRate, error) {
	query := `SELECT tier, cost_per_slot, price_per_slot, updated_at FROM tier_rates`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.TierRate
	for rows.Next() {
		var rate domain.TierRate
		if err := rows.Scan(&rate.Tier, &rate.CostPerSlot, &rate.PricePerSlot, &rate.UpdatedAt); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

func (r *financeRepository) UpsertTierRate(ctx context.Context, rate *domain.TierRate) error {
	query := `
		INSERT INTO tier_rates (tier, cost_per_slot, price_per_slot)
		VALUES ($1, $2, $3)
		ON CONFLICT (tier) DO UPDATE SET
			cost_per_slot = EXCLUDED.cost_per_slot,
			price_per_slot = EXCLUDED.price_per_slot
	`

	_, err := r.db.Exec(ctx, query, rate.Tier, rate.CostPerSlot, rate.PricePerSlot)
	return err
}
