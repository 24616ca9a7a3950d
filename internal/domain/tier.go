package domain

// Tier represents a competitive ranking bracket. Tiers are ordered from
// T4 (lowest) to GodTier (highest); cost rates and rewards scale with rank.
type Tier string

const (
	TierT4      Tier = "T4"
	TierT3      Tier = "T3"
	TierT2      Tier = "T2"
	TierT1      Tier = "T1"
	TierGodTier Tier = "godtier"
)

// tierOrder is the ascending rank order used for promotion and demotion.
var tierOrder = []Tier{TierT4, TierT3, TierT2, TierT1, TierGodTier}

// Rank returns the zero-based rank of the tier (T4 = 0, godtier = 4).
// Unknown tiers rank as the floor.
func (t Tier) Rank() int {
	for i, tier := range tierOrder {
		if tier == t {
			return i
		}
	}
	return 0
}

// IsValid reports whether t is a member of the fixed tier enumeration.
func (t Tier) IsValid() bool {
	for _, tier := range tierOrder {
		if tier == t {
			return true
		}
	}
	return false
}

// Promote returns the tier one rank above, capped at GodTier.
func (t Tier) Promote() Tier {
	rank := t.Rank()
	if rank >= len(tierOrder)-1 {
		return TierGodTier
	}
	return tierOrder[rank+1]
}

// Demote returns the tier one rank below, floored at T4.
func (t Tier) Demote() Tier {
	rank := t.Rank()
	if rank <= 0 {
		return TierT4
	}
	return tierOrder[rank-1]
}

// AllTiers returns the tiers in ascending rank order.
func AllTiers() []Tier {
	tiers := make([]Tier, len(tierOrder))
	copy(tiers, tierOrder)
	return tiers
}

// ParseTier converts a string to a Tier, reporting whether it is valid.
func ParseTier(s string) (Tier, bool) {
	t := Tier(s)
	return t, t.IsValid()
}
