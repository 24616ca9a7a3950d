package domain

import "time"

// StatusUpdate is the tier transition outcome for a team-month
type StatusUpdate string

const (
	StatusPromoted StatusUpdate = "promoted"
	StatusRetained StatusUpdate = "retained"
	StatusDemoted  StatusUpdate = "demoted"
	StatusExited   StatusUpdate = "exited"
)

// SponsorshipStatus is the sponsorship outcome for a team-month
type SponsorshipStatus string

const (
	SponsorshipNone      SponsorshipStatus = "none"
	SponsorshipTrial     SponsorshipStatus = "trial"
	SponsorshipSponsored SponsorshipStatus = "sponsored"
	SponsorshipExited    SponsorshipStatus = "exited"
)

// MonthlyInput is the value object fed to the monthly outcome calculator.
// Constructed fresh per calculation; never mutated by the calculator.
type MonthlyInput struct {
	TeamID             string
	TeamName           string
	Month              string // YYYY-MM
	CurrentTier        Tier
	SlotsPlayed        int
	SlotsWon           int
	SlotPricePerSlot   float64
	SlotCostPerSlot    float64 // 0 means resolve from tier rates
	TournamentWinnings float64
	TrialPhase         TrialPhase
	TierRates          map[Tier]float64 // default per-slot cost by tier
}

// TrialOutcome captures trial extension decisions for a team-month
type TrialOutcome struct {
	ExtensionGranted bool `json:"extension_granted"`
	ExtensionWeeks   int  `json:"extension_weeks"`
}

// Incentives is the revenue side of a monthly outcome
type Incentives struct {
	MonthlyPrizePool  float64 `json:"monthly_prize_pool"`
	MonthlyCost       float64 `json:"monthly_cost"`
	NextMonthTierCost float64 `json:"next_month_tier_cost"`
	Surplus           float64 `json:"surplus"`
	OrgShare          float64 `json:"org_share"`
	TeamShare         float64 `json:"team_share"`
	SplitRule         string  `json:"split_rule"`
}

// MonthlyOutcome is the computed result for a team-month. It has no
// persisted identity of its own; callers persist it keyed by (team, month).
type MonthlyOutcome struct {
	WinPercentage     float64           `json:"win_percentage"`
	UpdatedTier       Tier              `json:"updated_tier"`
	StatusUpdate      StatusUpdate      `json:"status_update"`
	SponsorshipStatus SponsorshipStatus `json:"sponsorship_status"`
	Trial             TrialOutcome      `json:"trial"`
	Incentives        Incentives        `json:"incentives"`
}

// MonthlyRecord is the persisted row merging input and outcome,
// keyed by (team_id, month). Recomputation overwrites the row.
type MonthlyRecord struct {
	TeamID             string            `json:"team_id"`
	TeamName           string            `json:"team_name"`
	Month              string            `json:"month"`
	CurrentTier        Tier              `json:"current_tier"`
	SlotsPlayed        int               `json:"slots_played"`
	SlotsWon           int               `json:"slots_won"`
	SlotPricePerSlot   float64           `json:"slot_price_per_slot"`
	SlotCostPerSlot    float64           `json:"slot_cost_per_slot"`
	TournamentWinnings float64           `json:"tournament_winnings"`
	TrialPhase         TrialPhase        `json:"trial_phase"`
	WinPercentage      float64           `json:"win_percentage"`
	UpdatedTier        Tier              `json:"updated_tier"`
	StatusUpdate       StatusUpdate      `json:"status_update"`
	SponsorshipStatus  SponsorshipStatus `json:"sponsorship_status"`
	Trial              TrialOutcome      `json:"trial"`
	Incentives         Incentives        `json:"incentives"`
	ComputedAt         time.Time         `json:"computed_at"`
}

// TierRate is one row of the tier default-rate reference table
type TierRate struct {
	Tier         Tier      `json:"tier"`
	CostPerSlot  float64   `json:"cost_per_slot"`
	PricePerSlot float64   `json:"price_per_slot"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ExpenseRecord is a raw slot expense or winnings entry. These rows back
// the on-the-fly recompute path when no monthly record has been persisted.
type ExpenseRecord struct {
	ID                 string    `json:"id"`
	TeamID             string    `json:"team_id"`
	Month              string    `json:"month"`
	SlotsPlayed        int       `json:"slots_played"`
	SlotsWon           int       `json:"slots_won"`
	SlotPrice          float64   `json:"slot_price"`
	SlotCost           float64   `json:"slot_cost"`
	TournamentWinnings float64   `json:"tournament_winnings"`
	RecordedAt         time.Time `json:"recorded_at"`
}
