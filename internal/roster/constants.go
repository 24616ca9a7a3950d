package roster

// Error message constants
const (
	ErrMsgTeamNameRequired   = "team name is required"
	ErrMsgGameRequired       = "game is required"
	ErrMsgHandleRequired     = "player handle is required"
	ErrMsgCreateTeamFailed   = "failed to create team: %w"
	ErrMsgGetTeamFailed      = "failed to get team: %w"
	ErrMsgListTeamsFailed    = "failed to list teams: %w"
	ErrMsgUpdateTeamFailed   = "failed to update team: %w"
	ErrMsgCreatePlayerFailed = "failed to create player: %w"
	ErrMsgListPlayersFailed  = "failed to list players: %w"
)

// Log message constants
const (
	LogMsgTeamCreated       = "Team created"
	LogMsgTeamUpdated       = "Team updated"
	LogMsgTeamDeactivated   = "Team deactivated"
	LogMsgPlayerAdded       = "Player added to roster"
	LogMsgPlayerDeactivated = "Player removed from roster"
)
