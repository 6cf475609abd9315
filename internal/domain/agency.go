package domain

import (
	"fmt"
	"time"
)

// Agency is a market or shopping-partner food-distribution location,
// constructed once per query from upstream geo-filter results and immutable
// for the duration of a resolution.
type Agency struct {
	ID      string
	Name    string
	Type    AgencyType
	Address string
	Region  string
	Phone   string

	Latitude  float64
	Longitude float64

	// DistanceMiles comes from the external geo lookup.
	DistanceMiles float64

	ByAppointmentOnly  bool
	Requirements       string
	FoodFormat         string
	DistributionModels string
	CulturesServed     []string
	WraparoundServices []string

	// Schedule holds one rule per (weekday, time-window) pair; an agency may
	// have several, e.g. different hours on different weekdays.
	Schedule []RecurrenceRule

	// LastServiceDate anchors 14-day parity for every-other-week rules.
	LastServiceDate *time.Time
}

// RecurrenceRule is one (weekday, cadence, time-window) triple for one agency.
type RecurrenceRule struct {
	Weekday Weekday
	Cadence Cadence

	// WeeksOfMonth holds the 1-indexed occurrence numbers (1..5) for
	// CadenceWeeksOfMonth; empty otherwise.
	WeeksOfMonth []int

	Start TimeOfDay
	End   TimeOfDay
}

// Validate checks the rule's structural invariants.
func (r RecurrenceRule) Validate() error {
	if !r.Weekday.Valid() {
		return fmt.Errorf("weekday %d out of range", int(r.Weekday))
	}
	if r.Start > r.End {
		return fmt.Errorf("start time %s after end time %s", r.Start, r.End)
	}
	switch r.Cadence {
	case CadenceWeeksOfMonth:
		if len(r.WeeksOfMonth) == 0 {
			return fmt.Errorf("weeks-of-month cadence with no week numbers")
		}
		for _, n := range r.WeeksOfMonth {
			if n < 1 || n > 5 {
				return fmt.Errorf("week number %d out of range [1,5]", n)
			}
		}
	case CadenceEveryWeek, CadenceEveryOtherWeek, CadenceNone:
	default:
		return fmt.Errorf("unknown cadence %q", r.Cadence)
	}
	return nil
}

// HasWeek reports whether week number n is in the rule's weeks-of-month set.
func (r RecurrenceRule) HasWeek(n int) bool {
	for _, w := range r.WeeksOfMonth {
		if w == n {
			return true
		}
	}
	return false
}

// Window returns the rule's operating hours as a TimeWindow.
func (r RecurrenceRule) Window() TimeWindow {
	return TimeWindow{Start: r.Start, End: r.End}
}
