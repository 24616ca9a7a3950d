package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raptorsgg/orgdash/internal/domain"
)

func baseInput() domain.MonthlyInput {
	return domain.MonthlyInput{
		TeamID:           "team-1",
		TeamName:         "Raptors Main",
		Month:            "2026-07",
		CurrentTier:      domain.TierT3,
		SlotsPlayed:      10,
		SlotsWon:         6,
		SlotPricePerSlot: 1000,
		SlotCostPerSlot:  500,
	}
}

func TestComputeMonthlyOutcome_Promotion(t *testing.T) {
	input := baseInput()

	outcome := ComputeMonthlyOutcome(input, DefaultPolicy())

	assert.InDelta(t, 60.0, outcome.WinPercentage, 1e-9)
	assert.Equal(t, domain.StatusPromoted, outcome.StatusUpdate)
	assert.Equal(t, domain.TierT2, outcome.UpdatedTier)
	assert.InDelta(t, 6000.0, outcome.Incentives.MonthlyPrizePool, 1e-9)
	assert.InDelta(t, 5000.0, outcome.Incentives.MonthlyCost, 1e-9)
}

func TestComputeMonthlyOutcome_Demotion(t *testing.T) {
	input := baseInput()
	input.SlotsWon = 2

	outcome := ComputeMonthlyOutcome(input, DefaultPolicy())

	assert.InDelta(t, 20.0, outcome.WinPercentage, 1e-9)
	assert.Equal(t, domain.StatusDemoted, outcome.StatusUpdate)
	assert.Equal(t, domain.TierT4, outcome.UpdatedTier)
}

func TestComputeMonthlyOutcome_Retain(t *testing.T) {
	for _, winPct := range []int{35, 40, 50} {
		input := baseInput()
		input.SlotsPlayed = 100
		input.SlotsWon = winPct

		outcome := ComputeMonthlyOutcome(input, DefaultPolicy())

		assert.Equal(t, domain.StatusRetained, outcome.StatusUpdate, "win%%=%d", winPct)
		assert.Equal(t, domain.TierT3, outcome.UpdatedTier, "win%%=%d", winPct)
	}
}

func TestComputeMonthlyOutcome_ZeroSlots(t *testing.T) {
	input := baseInput()
	input.SlotsPlayed = 0
	input.SlotsWon = 0

	outcome := ComputeMonthlyOutcome(input, DefaultPolicy())

	assert.Zero(t, outcome.WinPercentage)
	assert.Equal(t, domain.StatusRetained, outcome.StatusUpdate)
	assert.Equal(t, domain.TierT3, outcome.UpdatedTier)
	assert.Zero(t, outcome.Incentives.MonthlyPrizePool)
	assert.Zero(t, outcome.Incentives.MonthlyCost)
}

func TestComputeMonthlyOutcome_PromotionCeiling(t *testing.T) {
	input := baseInput()
	input.CurrentTier = domain.TierGodTier
	input.SlotsWon = 9

	outcome := ComputeMonthlyOutcome(input, DefaultPolicy())

	// Already at the top: tier stays put, the status still reports the win.
	assert.Equal(t, domain.StatusPromoted, outcome.StatusUpdate)
	assert.Equal(t, domain.TierGodTier, outcome.UpdatedTier)
}

func TestComputeMonthlyOutcome_DemotionFloor(t *testing.T) {
	input := baseInput()
	input.CurrentTier = domain.TierT4
	input.SlotsPlayed = 100
	input.SlotsWon = 25 // between exit (20) and retain (35)

	outcome := ComputeMonthlyOutcome(input, DefaultPolicy())

	assert.Equal(t, domain.StatusDemoted, outcome.StatusUpdate)
	assert.Equal(t, domain.TierT4, outcome.UpdatedTier)
}

func TestComputeMonthlyOutcome_FloorExit(t *testing.T) {
	input := baseInput()
	input.CurrentTier = domain.TierT4
	input.SlotsPlayed = 100
	input.SlotsWon = 15

	outcome := ComputeMonthlyOutcome(input, DefaultPolicy())

	assert.Equal(t, domain.StatusExited, outcome.StatusUpdate)
	assert.Equal(t, domain.TierT4, outcome.UpdatedTier)
	assert.Equal(t, domain.SponsorshipExited, outcome.SponsorshipStatus)
}

func TestComputeMonthlyOutcome_SurplusIdentity(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.MonthlyInput)
	}{
		{"base", func(i *domain.MonthlyInput) {}},
		{"with winnings", func(i *domain.MonthlyInput) { i.TournamentWinnings = 2500 }},
		{"losing month", func(i *domain.MonthlyInput) { i.SlotsWon = 1 }},
		{"no cost given", func(i *domain.MonthlyInput) { i.SlotCostPerSlot = 0 }},
		{"high volume", func(i *domain.MonthlyInput) { i.SlotsPlayed = 313; i.SlotsWon = 197; i.SlotPricePerSlot = 733.37 }},
		{"godtier", func(i *domain.MonthlyInput) { i.CurrentTier = domain.TierGodTier }},
	}

	policy := DefaultPolicy()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := baseInput()
			tc.mutate(&input)

			outcome := ComputeMonthlyOutcome(input, policy)
			inc := outcome.Incentives

			identity := inc.MonthlyPrizePool - inc.MonthlyCost - inc.NextMonthTierCost
			assert.InDelta(t, identity, inc.Surplus, 1e-6)

			if inc.Surplus > 0 {
				assert.InDelta(t, inc.Surplus, inc.OrgShare+inc.TeamShare, 1e-6)
			} else {
				assert.Zero(t, inc.OrgShare)
				assert.Zero(t, inc.TeamShare)
				assert.Empty(t, inc.SplitRule)
			}
		})
	}
}

func TestComputeMonthlyOutcome_SplitRules(t *testing.T) {
	policy := DefaultPolicy()

	// Big prize pool guarantees a positive surplus.
	input := baseInput()
	input.TournamentWinnings = 100000

	t.Run("standard split for non-sponsored team", func(t *testing.T) {
		outcome := ComputeMonthlyOutcome(input, policy)
		inc := outcome.Incentives

		require.Positive(t, inc.Surplus)
		assert.Equal(t, SplitRuleStandard, inc.SplitRule)
		assert.InDelta(t, inc.Surplus*0.5, inc.OrgShare, 1e-6)
		assert.InDelta(t, inc.Surplus*0.5, inc.TeamShare, 1e-6)
	})

	t.Run("sponsored split when trial qualifies", func(t *testing.T) {
		sponsored := input
		sponsored.TrialPhase = domain.TrialPhaseTrial

		outcome := ComputeMonthlyOutcome(sponsored, policy)
		inc := outcome.Incentives

		require.Equal(t, domain.SponsorshipSponsored, outcome.SponsorshipStatus)
		require.Positive(t, inc.Surplus)
		assert.Equal(t, SplitRuleSponsored, inc.SplitRule)
		assert.InDelta(t, inc.Surplus*0.3, inc.OrgShare, 1e-6)
		assert.InDelta(t, inc.Surplus*0.7, inc.TeamShare, 1e-6)
	})
}

func TestComputeMonthlyOutcome_TrialRules(t *testing.T) {
	policy := DefaultPolicy()

	cases := []struct {
		name            string
		phase           domain.TrialPhase
		slotsWon        int
		wantSponsorship domain.SponsorshipStatus
		wantExtension   bool
	}{
		{"trial qualifies", domain.TrialPhaseTrial, 6, domain.SponsorshipSponsored, false},
		{"trial extended", domain.TrialPhaseTrial, 4, domain.SponsorshipTrial, true},
		{"trial fails", domain.TrialPhaseTrial, 2, domain.SponsorshipExited, false},
		{"extended qualifies", domain.TrialPhaseExtended, 6, domain.SponsorshipSponsored, false},
		{"extended fails", domain.TrialPhaseExtended, 4, domain.SponsorshipExited, false},
		{"no trial", domain.TrialPhaseNone, 6, domain.SponsorshipNone, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := baseInput()
			input.TrialPhase = tc.phase
			input.SlotsWon = tc.slotsWon

			outcome := ComputeMonthlyOutcome(input, policy)

			assert.Equal(t, tc.wantSponsorship, outcome.SponsorshipStatus)
			assert.Equal(t, tc.wantExtension, outcome.Trial.ExtensionGranted)
			if tc.wantExtension {
				assert.Equal(t, DefaultTrialExtensionWeeks, outcome.Trial.ExtensionWeeks)
			}
		})
	}
}

func TestComputeMonthlyOutcome_CostFallbackFromTierRates(t *testing.T) {
	input := baseInput()
	input.SlotCostPerSlot = 0
	input.TierRates = map[domain.Tier]float64{
		domain.TierT3: 450,
		domain.TierT2: 700,
	}

	outcome := ComputeMonthlyOutcome(input, DefaultPolicy())

	// Cost comes from the caller's rate table, next-month cost from the
	// promoted tier's entry.
	assert.InDelta(t, 4500.0, outcome.Incentives.MonthlyCost, 1e-9)
	assert.InDelta(t, 7000.0, outcome.Incentives.NextMonthTierCost, 1e-9)
}

func TestComputeMonthlyOutcome_Deterministic(t *testing.T) {
	input := baseInput()
	input.TournamentWinnings = 1234.56
	policy := DefaultPolicy()

	first := ComputeMonthlyOutcome(input, policy)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeMonthlyOutcome(input, policy))
	}
}

func TestComputeMonthlyOutcome_NoNaN(t *testing.T) {
	input := domain.MonthlyInput{
		TeamID:      "team-x",
		Month:       "2026-07",
		CurrentTier: domain.TierT4,
	}

	outcome := ComputeMonthlyOutcome(input, DefaultPolicy())

	assert.False(t, math.IsNaN(outcome.WinPercentage))
	assert.False(t, math.IsNaN(outcome.Incentives.Surplus))
}
