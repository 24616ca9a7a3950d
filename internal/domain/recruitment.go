package domain

import "time"

// ApplicationStatus is the review pipeline state of a recruitment application
type ApplicationStatus string

const (
	ApplicationReceived  ApplicationStatus = "received"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// IsValid reports whether s is a known application status.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationReceived, ApplicationReviewing, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Application is a public recruitment form submission. The reference code
// is the only identifier exposed back to the applicant.
type Application struct {
	ID          string            `json:"id"`
	Reference   string            `json:"reference"`
	FullName    string            `json:"full_name"`
	Handle      string            `json:"handle"`
	Email       string            `json:"email"`
	DiscordID   string            `json:"discord_id,omitempty"`
	Game        string            `json:"game"`
	Role        string            `json:"role"`
	Experience  string            `json:"experience,omitempty"`
	Status      ApplicationStatus `json:"status"`
	ReviewNote  string            `json:"review_note,omitempty"`
	ReviewedBy  string            `json:"reviewed_by,omitempty"`
	SubmittedAt time.Time         `json:"submitted_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
