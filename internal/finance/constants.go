package finance

// Default tier-transition thresholds (win percentage).
// Overridable through the policy config file.
const (
	DefaultPromoteAbove     = 50.0
	DefaultRetainFloor      = 35.0
	DefaultExitBelow        = 20.0
	DefaultTrialQualify     = 50.0
	DefaultTrialExtendFloor = 35.0

	DefaultTrialExtensionWeeks = 2
)

// Default per-slot cost rates by tier, used when neither the caller nor the
// reference table supplies one.
const (
	DefaultRateT4      = 300.0
	DefaultRateT3      = 500.0
	DefaultRateT2      = 800.0
	DefaultRateT1      = 1200.0
	DefaultRateGodTier = 1800.0
)

// Named split rules
const (
	SplitRuleStandard  = "standard_50_50"
	SplitRuleSponsored = "sponsored_30_70"
)

// Tier-rate cache sizing for the finance service
const (
	TierRateCacheSize = 16
)

// Error message constants
const (
	ErrMsgTeamIDRequired     = "team id is required"
	ErrMsgMonthRequired      = "month is required"
	ErrMsgUpsertRecordFailed = "failed to upsert monthly record: %w"
	ErrMsgListRecordsFailed  = "failed to list monthly records: %w"
	ErrMsgListExpensesFailed = "failed to list expense records: %w"
	ErrMsgGetTierRatesFailed = "failed to get tier rates: %w"
	ErrMsgPutTierRateFailed  = "failed to update tier rate: %w"
	ErrMsgGetTeamFailed      = "failed to get team: %w"
)
