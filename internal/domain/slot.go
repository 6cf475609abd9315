package domain

import "time"

// RequestedSlot is the user's ask: a pickup date plus a daily time bucket.
// Date is a calendar date at midnight UTC; the time component is ignored.
type RequestedSlot struct {
	Date   time.Time
	Period Period
}

// ResolutionResult is the per-agency outcome of an availability resolution.
type ResolutionResult struct {
	State ResolutionState

	// NextOpenDate is set for StateClosedWithNext; always >= the requested
	// date.
	NextOpenDate *time.Time

	// EffectiveWindow is the intersection of agency hours and the requested
	// period, set only for StateOpenToday.
	EffectiveWindow *TimeWindow

	// Warnings collects data-quality problems hit while resolving this
	// agency (malformed rules, missing anchors). They never abort the
	// resolution.
	Warnings []ScheduleWarning
}

// IsOpen reports whether the agency is open on the requested date.
func (r ResolutionResult) IsOpen() bool {
	return r.State == StateOpenToday
}

// ScheduleWarning records a recovered data-quality problem on a single
// hours row or rule.
type ScheduleWarning struct {
	AgencyID string
	Weekday  string
	Raw      string
	Reason   string
}

func (w ScheduleWarning) String() string {
	s := w.Reason
	if w.AgencyID != "" {
		s = w.AgencyID + ": " + s
	}
	if w.Raw != "" {
		s += " (" + w.Raw + ")"
	}
	return s
}
