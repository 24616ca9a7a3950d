package finance

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/validation"
)

// SplitRule is a named revenue-sharing ratio applied to a positive surplus.
// Percentages are organization policy data, not derived by the calculator.
type SplitRule struct {
	Name        string  `json:"name"`
	OrgPercent  float64 `json:"org_percent"`
	TeamPercent float64 `json:"team_percent"`
}

// Policy holds the organization's tier and incentive policy: transition
// thresholds, default per-slot rates, trial handling, and split rules.
type Policy struct {
	PromoteAbove        float64                 `json:"promote_above"`
	RetainFloor         float64                 `json:"retain_floor"`
	ExitBelow           float64                 `json:"exit_below"`
	TrialQualify        float64                 `json:"trial_qualify"`
	TrialExtendFloor    float64                 `json:"trial_extend_floor"`
	TrialExtensionWeeks int                     `json:"trial_extension_weeks"`
	TierRates           map[domain.Tier]float64 `json:"tier_rates"`
	StandardSplit       SplitRule               `json:"standard_split"`
	SponsoredSplit      SplitRule               `json:"sponsored_split"`
}

// DefaultPolicy returns the built-in policy used when no config file is
// provided. The floor-exit boundary and the split ratios are organization
// decisions; see configs/policy for the deployed values.
func DefaultPolicy() Policy {
	return Policy{
		PromoteAbove:        DefaultPromoteAbove,
		RetainFloor:         DefaultRetainFloor,
		ExitBelow:           DefaultExitBelow,
		TrialQualify:        DefaultTrialQualify,
		TrialExtendFloor:    DefaultTrialExtendFloor,
		TrialExtensionWeeks: DefaultTrialExtensionWeeks,
		TierRates: map[domain.Tier]float64{
			domain.TierT4:      DefaultRateT4,
			domain.TierT3:      DefaultRateT3,
			domain.TierT2:      DefaultRateT2,
			domain.TierT1:      DefaultRateT1,
			domain.TierGodTier: DefaultRateGodTier,
		},
		StandardSplit: SplitRule{
			Name:        SplitRuleStandard,
			OrgPercent:  50,
			TeamPercent: 50,
		},
		SponsoredSplit: SplitRule{
			Name:        SplitRuleSponsored,
			OrgPercent:  30,
			TeamPercent: 70,
		},
	}
}

// LoadPolicy reads and schema-validates a policy config file, then merges
// it over the defaults so partial files stay valid.
func LoadPolicy(path, schemaPath string, v validation.SchemaValidator) (Policy, error) {
	policy := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	if err := v.ValidateBytes(data, schemaPath); err != nil {
		return policy, fmt.Errorf("policy file %s rejected: %w", path, err)
	}

	if err := json.Unmarshal(data, &policy); err != nil {
		return policy, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}

	if err := policy.Validate(); err != nil {
		return DefaultPolicy(), err
	}

	return policy, nil
}

// Validate checks internal consistency the JSON schema cannot express.
func (p Policy) Validate() error {
	if p.ExitBelow > p.RetainFloor {
		return fmt.Errorf("exit_below (%.1f) must not exceed retain_floor (%.1f)", p.ExitBelow, p.RetainFloor)
	}
	if p.RetainFloor > p.PromoteAbove {
		return fmt.Errorf("retain_floor (%.1f) must not exceed promote_above (%.1f)", p.RetainFloor, p.PromoteAbove)
	}
	for _, rule := range []SplitRule{p.StandardSplit, p.SponsoredSplit} {
		if rule.OrgPercent+rule.TeamPercent != 100 {
			return fmt.Errorf("split rule %s percentages must sum to 100", rule.Name)
		}
	}
	return nil
}

// RateFor resolves the default per-slot cost for a tier, preferring the
// caller-supplied override table.
func (p Policy) RateFor(tier domain.Tier, overrides map[domain.Tier]float64) float64 {
	if overrides != nil {
		if rate, ok := overrides[tier]; ok && rate > 0 {
			return rate
		}
	}
	if rate, ok := p.TierRates[tier]; ok {
		return rate
	}
	return 0
}
