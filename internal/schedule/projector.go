package schedule

import (
	"fmt"
	"time"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/teambition/rrule-go"
)

// rruleWeekdays maps the Monday-based domain weekday onto rrule's constants.
var rruleWeekdays = [7]rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// MonthProjection is the result of projecting one rule onto one month.
type MonthProjection struct {
	// Dates are the UTC-midnight calendar dates in the month on which the
	// rule fires, ascending.
	Dates []time.Time

	// NeedsAnchor is set for every-other-week rules: their parity cannot be
	// fixed by the calendar alone, so projection is delegated to the
	// resolver's anchor arithmetic.
	NeedsAnchor bool
}

// ProjectMonth enumerates the dates in (year, month) on which the rule
// fires. Nth occurrences that don't exist in a month (a 5th Friday in a
// four-Friday month) are silently omitted.
func ProjectMonth(rule domain.RecurrenceRule, year int, month time.Month) (MonthProjection, error) {
	switch rule.Cadence {
	case domain.CadenceNone:
		return MonthProjection{}, nil
	case domain.CadenceEveryOtherWeek:
		return MonthProjection{NeedsAnchor: true}, nil
	}

	if !rule.Weekday.Valid() {
		return MonthProjection{}, fmt.Errorf("weekday %d out of range", int(rule.Weekday))
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	opt := rrule.ROption{Dtstart: monthStart}
	switch rule.Cadence {
	case domain.CadenceEveryWeek:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{rruleWeekdays[rule.Weekday]}
	case domain.CadenceWeeksOfMonth:
		opt.Freq = rrule.MONTHLY
		for _, n := range rule.WeeksOfMonth {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[rule.Weekday].Nth(n))
		}
	default:
		return MonthProjection{}, fmt.Errorf("unknown cadence %q", rule.Cadence)
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return MonthProjection{}, fmt.Errorf("building recurrence for cadence %s: %w", rule.Cadence, err)
	}

	return MonthProjection{Dates: r.Between(monthStart, monthEnd, true)}, nil
}

// ParityMatches reports whether date is an on-cadence service day for an
// every-other-week rule anchored at anchor (a known past service date).
// Dates before the anchor never match; the resolver's forward search picks
// those up from the anchor onward.
func ParityMatches(date, anchor time.Time) bool {
	days := daysBetween(anchor, date)
	return days >= 0 && days%14 == 0
}
