package finance

import "github.com/raptorsgg/orgdash/internal/domain"

// ComputeMonthlyOutcome derives a team's monthly outcome from its slot
// statistics and the organization policy. Pure and deterministic: no I/O,
// no side effects, and it never fails for numeric input. Division by zero
// is guarded; a month with no slots played changes nothing.
func ComputeMonthlyOutcome(input domain.MonthlyInput, policy Policy) domain.MonthlyOutcome {
	winPct := 0.0
	if input.SlotsPlayed > 0 {
		winPct = float64(input.SlotsWon) / float64(input.SlotsPlayed) * 100
	}

	updatedTier, status := applyTierTransition(input.CurrentTier, winPct, input.SlotsPlayed, policy)
	sponsorship, trial := applyTrialRules(input.TrialPhase, winPct, status, policy)
	incentives := computeIncentives(input, updatedTier, sponsorship, policy)

	return domain.MonthlyOutcome{
		WinPercentage:     winPct,
		UpdatedTier:       updatedTier,
		StatusUpdate:      status,
		SponsorshipStatus: sponsorship,
		Trial:             trial,
		Incentives:        incentives,
	}
}

// applyTierTransition moves a team at most one rank per invocation.
// No promotion or demotion happens without data.
func applyTierTransition(current domain.Tier, winPct float64, slotsPlayed int, policy Policy) (domain.Tier, domain.StatusUpdate) {
	if slotsPlayed == 0 {
		return current, domain.StatusRetained
	}

	switch {
	case winPct > policy.PromoteAbove:
		return current.Promote(), domain.StatusPromoted
	case winPct >= policy.RetainFloor:
		return current, domain.StatusRetained
	}

	// Below the retain floor. Demotion is floored at T4; a team already at
	// the floor exits only under the harsher secondary threshold.
	if current == domain.TierT4 {
		if winPct < policy.ExitBelow {
			return domain.TierT4, domain.StatusExited
		}
		return domain.TierT4, domain.StatusDemoted
	}

	return current.Demote(), domain.StatusDemoted
}

// applyTrialRules advances or ends a team's sponsorship trial.
// Trial extension here is the computed grant; managers may still override
// it manually through the monthly record upsert.
func applyTrialRules(phase domain.TrialPhase, winPct float64, status domain.StatusUpdate, policy Policy) (domain.SponsorshipStatus, domain.TrialOutcome) {
	var trial domain.TrialOutcome

	if status == domain.StatusExited {
		return domain.SponsorshipExited, trial
	}

	switch phase {
	case domain.TrialPhaseTrial:
		if winPct >= policy.TrialQualify {
			return domain.SponsorshipSponsored, trial
		}
		if winPct >= policy.TrialExtendFloor {
			trial.ExtensionGranted = true
			trial.ExtensionWeeks = policy.TrialExtensionWeeks
			return domain.SponsorshipTrial, trial
		}
		return domain.SponsorshipExited, trial

	case domain.TrialPhaseExtended:
		// An extended trial is the last chance: qualify or exit.
		if winPct >= policy.TrialQualify {
			return domain.SponsorshipSponsored, trial
		}
		return domain.SponsorshipExited, trial
	}

	return domain.SponsorshipNone, trial
}

// computeIncentives derives the prize pool, costs, and revenue split.
// The surplus identity holds exactly for all inputs:
// surplus = prize pool - monthly cost - next month tier cost.
func computeIncentives(input domain.MonthlyInput, updatedTier domain.Tier, sponsorship domain.SponsorshipStatus, policy Policy) domain.Incentives {
	costPerSlot := input.SlotCostPerSlot
	if costPerSlot <= 0 {
		costPerSlot = policy.RateFor(input.CurrentTier, input.TierRates)
	}

	nextRate := policy.RateFor(updatedTier, input.TierRates)
	if nextRate <= 0 {
		nextRate = costPerSlot
	}

	prizePool := float64(input.SlotsWon)*input.SlotPricePerSlot + input.TournamentWinnings
	monthlyCost := float64(input.SlotsPlayed) * costPerSlot
	nextMonthTierCost := float64(input.SlotsPlayed) * nextRate
	surplus := prizePool - monthlyCost - nextMonthTierCost

	incentives := domain.Incentives{
		MonthlyPrizePool:  prizePool,
		MonthlyCost:       monthlyCost,
		NextMonthTierCost: nextMonthTierCost,
		Surplus:           surplus,
	}

	if surplus <= 0 {
		// Deficit is absorbed by the organization; no split happens.
		return incentives
	}

	rule := policy.StandardSplit
	if sponsorship == domain.SponsorshipSponsored {
		rule = policy.SponsoredSplit
	}

	incentives.SplitRule = rule.Name
	incentives.OrgShare = surplus * rule.OrgPercent / 100
	// Derive the team share from the remainder so the shares always sum to
	// the surplus exactly.
	incentives.TeamShare = surplus - incentives.OrgShare

	return incentives
}
