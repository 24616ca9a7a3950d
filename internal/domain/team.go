package domain

import "time"

// Team represents a sponsored or trial roster within the organization
type Team struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Game        string     `json:"game"`
	Region      string     `json:"region"`
	CurrentTier Tier       `json:"current_tier"`
	TrialPhase  TrialPhase `json:"trial_phase"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Player represents a roster member
type Player struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Handle    string    `json:"handle"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"` // IGL, fragger, support, sub, coach
	DiscordID string    `json:"discord_id,omitempty"`
	Active    bool      `json:"active"`
	JoinedAt  time.Time `json:"joined_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TrialPhase is a team's probationary sponsorship status
type TrialPhase string

const (
	TrialPhaseNone     TrialPhase = "none"
	TrialPhaseTrial    TrialPhase = "trial"
	TrialPhaseExtended TrialPhase = "extended"
)

// IsValid reports whether p is a known trial phase.
func (p TrialPhase) IsValid() bool {
	switch p {
	case TrialPhaseNone, TrialPhaseTrial, TrialPhaseExtended:
		return true
	}
	return false
}
