package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierPromote(t *testing.T) {
	cases := []struct {
		from, want Tier
	}{
		{TierT4, TierT3},
		{TierT3, TierT2},
		{TierT2, TierT1},
		{TierT1, TierGodTier},
		{TierGodTier, TierGodTier}, // capped
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.Promote(), "promote %s", tc.from)
	}
}

func TestTierDemote(t *testing.T) {
	cases := []struct {
		from, want Tier
	}{
		{TierGodTier, TierT1},
		{TierT1, TierT2},
		{TierT2, TierT3},
		{TierT3, TierT4},
		{TierT4, TierT4}, // floored
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.Demote(), "demote %s", tc.from)
	}
}

func TestTierIsValid(t *testing.T) {
	for _, tier := range AllTiers() {
		assert.True(t, tier.IsValid(), string(tier))
	}
	for _, bad := range []Tier{"", "t4", "T5", "GODTIER", "godTier"} {
		assert.False(t, bad.IsValid(), string(bad))
	}
}

func TestTierRankOrdering(t *testing.T) {
	tiers := AllTiers()
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].Rank(), tiers[i-1].Rank())
	}
}
