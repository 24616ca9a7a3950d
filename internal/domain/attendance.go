package domain

import "time"

// AttendanceStatus is the verification state of an attendance record
type AttendanceStatus string

const (
	AttendancePending  AttendanceStatus = "pending"
	AttendanceVerified AttendanceStatus = "verified"
	AttendanceRejected AttendanceStatus = "rejected"
)

// IsValid reports whether s is a known attendance status.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePending, AttendanceVerified, AttendanceRejected:
		return true
	}
	return false
}

// AttendanceRecord tracks a player's presence for a scheduled slot.
// Records start pending and are verified or rejected by a manager.
type AttendanceRecord struct {
	ID         string           `json:"id"`
	TeamID     string           `json:"team_id"`
	PlayerID   string           `json:"player_id"`
	SlotDate   time.Time        `json:"slot_date"`
	Month      string           `json:"month"` // YYYY-MM
	Present    bool             `json:"present"`
	Note       string           `json:"note,omitempty"`
	Status     AttendanceStatus `json:"status"`
	VerifiedBy string           `json:"verified_by,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// AttendanceSummary aggregates verified attendance for a team-month
type AttendanceSummary struct {
	TeamID         string             `json:"team_id"`
	Month          string             `json:"month"`
	TotalSlots     int                `json:"total_slots"`
	PresentCount   int                `json:"present_count"`
	AbsentCount    int                `json:"absent_count"`
	PendingCount   int                `json:"pending_count"`
	AttendanceRate float64            `json:"attendance_rate"` // 0-100, verified records only
	PerPlayer      []PlayerAttendance `json:"per_player"`
}

// PlayerAttendance is one player's slice of an attendance summary
type PlayerAttendance struct {
	PlayerID     string  `json:"player_id"`
	Handle       string  `json:"handle"`
	SlotsTracked int     `json:"slots_tracked"`
	Present      int     `json:"present"`
	Rate         float64 `json:"rate"` // 0-100
}
