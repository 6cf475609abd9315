package schedule

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cafb-tech/alacarte/internal/domain"
)

// RawHoursRow is one raw hours record for one (agency, weekday) pair as it
// arrives from the hours store: a frequency annotation plus start/end time
// strings.
type RawHoursRow struct {
	AgencyID      string
	WeekdayLabel  string
	FrequencyText string
	StartTimeText string
	EndTimeText   string
}

// weekNumberPattern extracts week-of-month tokens ("1st", "3rd", bare "2")
// from frequency text like "1st, 3rd of the Month" or "(weeks 2 and 4)".
var weekNumberPattern = regexp.MustCompile(`\b([1-5])(?:st|nd|rd|th)?\b`)

// closureMarkers are frequency annotations that explicitly mean "no
// recurring hours" rather than malformed data.
var closureMarkers = map[string]bool{
	"closed": true, "none": true, "n/a": true, "no hours": true,
}

// ParseRule turns one raw hours row into zero or one RecurrenceRule.
// Malformed rows produce no rule plus a warning; a single bad row must
// never abort the whole batch, so nothing here returns an error.
func ParseRule(row RawHoursRow) (*domain.RecurrenceRule, []domain.ScheduleWarning) {
	var warnings []domain.ScheduleWarning
	warn := func(raw, reason string) {
		warnings = append(warnings, domain.ScheduleWarning{
			AgencyID: row.AgencyID,
			Weekday:  row.WeekdayLabel,
			Raw:      raw,
			Reason:   reason,
		})
	}

	freq := strings.TrimSpace(row.FrequencyText)
	if freq == "" || closureMarkers[strings.ToLower(freq)] {
		return nil, nil
	}

	weekday, err := domain.ParseWeekday(row.WeekdayLabel)
	if err != nil {
		warn(row.WeekdayLabel, "unrecognized weekday label")
		return nil, warnings
	}

	cadence, weeks, ok := parseCadence(freq)
	if !ok {
		warn(freq, "unrecognized frequency text")
		return nil, warnings
	}

	start, end, timeWarnings := parseWindow(row)
	warnings = append(warnings, timeWarnings...)

	return &domain.RecurrenceRule{
		Weekday:      weekday,
		Cadence:      cadence,
		WeeksOfMonth: weeks,
		Start:        start,
		End:          end,
	}, warnings
}

func parseCadence(freq string) (domain.Cadence, []int, bool) {
	lower := strings.ToLower(freq)
	switch {
	case strings.Contains(lower, "every other week"):
		return domain.CadenceEveryOtherWeek, nil, true
	case strings.Contains(lower, "every week"):
		return domain.CadenceEveryWeek, nil, true
	}

	matches := weekNumberPattern.FindAllStringSubmatch(freq, -1)
	if len(matches) == 0 {
		return "", nil, false
	}
	seen := map[int]bool{}
	var weeks []int
	for _, m := range matches {
		n := int(m[1][0] - '0')
		if !seen[n] {
			seen[n] = true
			weeks = append(weeks, n)
		}
	}
	sort.Ints(weeks)
	return domain.CadenceWeeksOfMonth, weeks, true
}

// parseWindow resolves the row's start/end times. A row with either time
// missing falls back to an all-day window; swapped times are corrected and
// reported as a data-quality warning, matching how the source sheets are
// actually dirty.
func parseWindow(row RawHoursRow) (domain.TimeOfDay, domain.TimeOfDay, []domain.ScheduleWarning) {
	var warnings []domain.ScheduleWarning
	warn := func(raw, reason string) {
		warnings = append(warnings, domain.ScheduleWarning{
			AgencyID: row.AgencyID,
			Weekday:  row.WeekdayLabel,
			Raw:      raw,
			Reason:   reason,
		})
	}

	startText := strings.TrimSpace(row.StartTimeText)
	endText := strings.TrimSpace(row.EndTimeText)
	if startText == "" || endText == "" {
		return domain.Midnight, domain.EndOfDay, nil
	}

	start, err := domain.ParseTimeOfDay(startText)
	if err != nil {
		warn(startText, "unparseable start time, using all-day window")
		return domain.Midnight, domain.EndOfDay, warnings
	}
	end, err := domain.ParseTimeOfDay(endText)
	if err != nil {
		warn(endText, "unparseable end time, using all-day window")
		return domain.Midnight, domain.EndOfDay, warnings
	}

	if start > end {
		warn(startText+" > "+endText, "start time after end time, swapping")
		start, end = end, start
	}
	return start, end, warnings
}

// ParseAgencyRules parses all hours rows for one agency, collecting the
// usable rules and every warning hit along the way.
func ParseAgencyRules(rows []RawHoursRow) ([]domain.RecurrenceRule, []domain.ScheduleWarning) {
	var rules []domain.RecurrenceRule
	var warnings []domain.ScheduleWarning
	for _, row := range rows {
		rule, ws := ParseRule(row)
		warnings = append(warnings, ws...)
		if rule != nil {
			rules = append(rules, *rule)
		}
	}
	return rules, warnings
}
