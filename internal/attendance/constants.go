package attendance

// LowRateThreshold is the verified attendance rate (percent) below which a
// team-month gets flagged for manager review.
const LowRateThreshold = 75.0

// Error message constants
const (
	ErrMsgTeamRequired   = "team id is required"
	ErrMsgPlayerRequired = "player id is required"
	ErrMsgSlotRequired   = "slot date is required"
	ErrMsgRecordFailed   = "failed to record attendance: %w"
	ErrMsgVerifyFailed   = "failed to verify attendance: %w"
	ErrMsgSummaryFailed  = "failed to build attendance summary: %w"
)

// Log message constants
const (
	LogMsgAttendanceRecorded = "Attendance recorded"
	LogMsgAttendanceReviewed = "Attendance record reviewed"
	LogMsgLowRateFlagged     = "Low attendance rate flagged"
	LogMsgFlagPublishFailed  = "Failed to publish low attendance event"
)
