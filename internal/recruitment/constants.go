package recruitment

// Reference code settings. Codes are short, unambiguous, and safe to read
// out on Discord.
const (
	ReferenceAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	ReferenceLength   = 8
)

// DefaultListLimit caps unbounded application listings
const DefaultListLimit = 100

// Error message constants
const (
	ErrMsgFullNameRequired = "full name is required"
	ErrMsgHandleRequired   = "handle is required"
	ErrMsgEmailRequired    = "email is required"
	ErrMsgGameRequired     = "game is required"
	ErrMsgSubmitFailed     = "failed to submit application: %w"
	ErrMsgGetFailed        = "failed to get application: %w"
	ErrMsgListFailed       = "failed to list applications: %w"
	ErrMsgReviewFailed     = "failed to review application: %w"
)

// Log message constants
const (
	LogMsgApplicationReceived = "Recruitment application received"
	LogMsgApplicationReviewed = "Recruitment application reviewed"
	LogMsgEventPublishFailed  = "Failed to publish application event"
)
