package finance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/validation"
)

const policySchemaPath = "../../configs/policy/tier_policy.schema.json"

func writePolicyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tier_policy.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPolicy_FullFile(t *testing.T) {
	path := writePolicyFile(t, `{
		"promote_above": 55,
		"retain_floor": 40,
		"exit_below": 25,
		"trial_qualify": 55,
		"trial_extend_floor": 40,
		"trial_extension_weeks": 3,
		"tier_rates": {"T4": 350, "T3": 550, "T2": 850, "T1": 1250, "godtier": 1900},
		"standard_split": {"name": "standard_50_50", "org_percent": 50, "team_percent": 50},
		"sponsored_split": {"name": "sponsored_30_70", "org_percent": 30, "team_percent": 70}
	}`)

	policy, err := LoadPolicy(path, policySchemaPath, validation.NewSchemaValidator())
	require.NoError(t, err)

	assert.Equal(t, 55.0, policy.PromoteAbove)
	assert.Equal(t, 3, policy.TrialExtensionWeeks)
	assert.Equal(t, 350.0, policy.TierRates[domain.TierT4])
}

func TestLoadPolicy_PartialFileMergesOverDefaults(t *testing.T) {
	path := writePolicyFile(t, `{"promote_above": 60}`)

	policy, err := LoadPolicy(path, policySchemaPath, validation.NewSchemaValidator())
	require.NoError(t, err)

	assert.Equal(t, 60.0, policy.PromoteAbove)
	// Everything else stays at the defaults.
	assert.Equal(t, DefaultRetainFloor, policy.RetainFloor)
	assert.Equal(t, DefaultRateT3, policy.TierRates[domain.TierT3])
	assert.Equal(t, SplitRuleStandard, policy.StandardSplit.Name)
}

func TestLoadPolicy_MissingFile(t *testing.T) {
	_, err := LoadPolicy("does-not-exist.json", policySchemaPath, validation.NewSchemaValidator())
	assert.Error(t, err)
}

func TestLoadPolicy_SchemaRejectsUnknownField(t *testing.T) {
	path := writePolicyFile(t, `{"promote_above": 60, "bonus_multiplier": 2}`)

	_, err := LoadPolicy(path, policySchemaPath, validation.NewSchemaValidator())
	assert.Error(t, err)
}

func TestLoadPolicy_DeployedConfigIsValid(t *testing.T) {
	policy, err := LoadPolicy("../../configs/policy/tier_policy.json", policySchemaPath, validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.NoError(t, policy.Validate())
}

func TestPolicyValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Policy)
		wantErr bool
	}{
		{"defaults", func(p *Policy) {}, false},
		{"exit above retain", func(p *Policy) { p.ExitBelow = 40 }, true},
		{"retain above promote", func(p *Policy) { p.RetainFloor = 60 }, true},
		{"standard split broken", func(p *Policy) { p.StandardSplit.OrgPercent = 60 }, true},
		{"sponsored split broken", func(p *Policy) { p.SponsoredSplit.TeamPercent = 60 }, true},
		{"equal thresholds allowed", func(p *Policy) { p.RetainFloor = p.PromoteAbove }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			policy := DefaultPolicy()
			tc.mutate(&policy)

			err := policy.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPolicyRateFor(t *testing.T) {
	policy := DefaultPolicy()

	t.Run("policy table", func(t *testing.T) {
		assert.Equal(t, DefaultRateT2, policy.RateFor(domain.TierT2, nil))
	})

	t.Run("override wins", func(t *testing.T) {
		overrides := map[domain.Tier]float64{domain.TierT2: 999}
		assert.Equal(t, 999.0, policy.RateFor(domain.TierT2, overrides))
	})

	t.Run("zero override ignored", func(t *testing.T) {
		overrides := map[domain.Tier]float64{domain.TierT2: 0}
		assert.Equal(t, DefaultRateT2, policy.RateFor(domain.TierT2, overrides))
	})

	t.Run("unknown tier", func(t *testing.T) {
		assert.Zero(t, policy.RateFor(domain.Tier("T9"), nil))
	})
}
