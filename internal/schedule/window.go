package schedule

import "github.com/cafb-tech/alacarte/internal/domain"

// DefaultPeriods is the default period-name → time-window table. The
// windows follow the source data's "Ending Time" semantics: the end minute
// still counts as open, so a 09:00–11:59 morning overlap at exactly 11:59
// is a match.
func DefaultPeriods() map[domain.Period]domain.TimeWindow {
	return map[domain.Period]domain.TimeWindow{
		domain.PeriodMorning:   {Start: domain.NewTimeOfDay(6, 0), End: domain.NewTimeOfDay(11, 59)},
		domain.PeriodAfternoon: {Start: domain.NewTimeOfDay(12, 0), End: domain.NewTimeOfDay(16, 59)},
		domain.PeriodEvening:   {Start: domain.NewTimeOfDay(17, 0), End: domain.NewTimeOfDay(20, 59)},
		domain.PeriodNight:     {Start: domain.NewTimeOfDay(21, 0), End: domain.NewTimeOfDay(23, 59)},
	}
}

// MatchWindow intersects an agency's operating hours with a requested
// period window. Overlap exists iff max(starts) <= min(ends); equality
// counts as still-open at that instant.
func MatchWindow(hours, period domain.TimeWindow) (domain.TimeWindow, bool) {
	start := maxTimeOfDay(hours.Start, period.Start)
	end := minTimeOfDay(hours.End, period.End)
	if start > end {
		return domain.TimeWindow{}, false
	}
	return domain.TimeWindow{Start: start, End: end}, true
}

func maxTimeOfDay(a, b domain.TimeOfDay) domain.TimeOfDay {
	if a > b {
		return a
	}
	return b
}

func minTimeOfDay(a, b domain.TimeOfDay) domain.TimeOfDay {
	if a < b {
		return a
	}
	return b
}
