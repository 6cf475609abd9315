package schedule

import "time"

// DateOnly truncates t to midnight UTC. All calendar arithmetic in this
// package runs on UTC midnights so day deltas are exact.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from a to b (negative when b
// is before a). Both arguments are normalized first.
func daysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
