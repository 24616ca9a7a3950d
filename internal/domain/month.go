package domain

import "time"

// MonthLayout is the calendar month key format used across the system.
const MonthLayout = "2006-01"

// ValidMonth reports whether s is a well-formed YYYY-MM month key.
func ValidMonth(s string) bool {
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// MonthOf returns the month key for a point in time (UTC).
func MonthOf(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// PreviousMonth returns the month key immediately before m.
// Invalid keys fall back to the month before now.
func PreviousMonth(m string) string {
	t, err := time.Parse(MonthLayout, m)
	if err != nil {
		t = time.Now().UTC()
	}
	return t.AddDate(0, -1, 0).Format(MonthLayout)
}
