package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgTeamNotFound        = "team not found"
	ErrMsgPlayerNotFound      = "player not found"
	ErrMsgRecordNotFound      = "record not found"
	ErrMsgApplicationNotFound = "application not found"
	ErrMsgTierRateNotFound    = "tier rate not found"

	ErrMsgInvalidTier        = "invalid tier"
	ErrMsgInvalidMonth       = "invalid month key"
	ErrMsgInvalidTransition  = "invalid status transition"
	ErrMsgAlreadyVerified    = "attendance record already verified"
	ErrMsgDuplicateTeamName  = "team name already in use"
	ErrMsgDuplicateReference = "duplicate application reference"

	ErrMsgInvalidInput  = "invalid input"
	ErrMsgDatabaseError = "database error"
)

// Domain errors
var (
	ErrTeamNotFound        = errors.New(ErrMsgTeamNotFound)
	ErrPlayerNotFound      = errors.New(ErrMsgPlayerNotFound)
	ErrRecordNotFound      = errors.New(ErrMsgRecordNotFound)
	ErrApplicationNotFound = errors.New(ErrMsgApplicationNotFound)
	ErrTierRateNotFound    = errors.New(ErrMsgTierRateNotFound)

	ErrInvalidTier        = errors.New(ErrMsgInvalidTier)
	ErrInvalidMonth       = errors.New(ErrMsgInvalidMonth)
	ErrInvalidTransition  = errors.New(ErrMsgInvalidTransition)
	ErrAlreadyVerified    = errors.New(ErrMsgAlreadyVerified)
	ErrDuplicateTeamName  = errors.New(ErrMsgDuplicateTeamName)
	ErrDuplicateReference = errors.New(ErrMsgDuplicateReference)

	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
