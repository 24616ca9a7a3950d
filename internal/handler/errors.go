package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgCreateTeamFailed   = "Failed to create team"
	ErrMsgGetTeamFailed      = "Failed to get team"
	ErrMsgListTeamsFailed    = "Failed to list teams"
	ErrMsgUpdateTeamFailed   = "Failed to update team"
	ErrMsgDeleteTeamFailed   = "Failed to deactivate team"
	ErrMsgAddPlayerFailed    = "Failed to add player"
	ErrMsgListPlayersFailed  = "Failed to list players"
	ErrMsgRemovePlayerFailed = "Failed to remove player"

	ErrMsgSubmitPerfFailed = "Failed to submit performance"
	ErrMsgListPerfFailed   = "Failed to list performances"

	ErrMsgRecordAttendanceFailed = "Failed to record attendance"
	ErrMsgReviewAttendanceFailed = "Failed to review attendance"
	ErrMsgAttendanceSummaryFail  = "Failed to build attendance summary"

	ErrMsgSubmitMonthlyFailed = "Failed to submit monthly record"
	ErrMsgListMonthlyFailed   = "Failed to list monthly records"
	ErrMsgGetTierRatesFailed  = "Failed to get tier rates"
	ErrMsgPutTierRateFailed   = "Failed to update tier rate"
	ErrMsgRecordExpenseFailed = "Failed to record expense"

	ErrMsgOverviewFailed        = "Failed to build analytics overview"
	ErrMsgTeamAnalyticsFailed   = "Failed to build team analytics"
	ErrMsgPlayerAnalyticsFailed = "Failed to build player analytics"

	ErrMsgSubmitApplicationFailed = "Failed to submit application"
	ErrMsgListApplicationsFailed  = "Failed to list applications"
	ErrMsgReviewApplicationFailed = "Failed to review application"
)

// Success messages for API responses
const (
	MsgTeamDeactivated   = "Team deactivated"
	MsgPlayerRemoved     = "Player removed from roster"
	MsgTierRateUpdated   = "Tier rate updated"
	MsgApplicationThanks = "Application received. Keep your reference code."
)
