package schedule

import (
	"testing"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(weekday, freq, start, end string) RawHoursRow {
	return RawHoursRow{
		AgencyID:      "AG-001",
		WeekdayLabel:  weekday,
		FrequencyText: freq,
		StartTimeText: start,
		EndTimeText:   end,
	}
}

func TestParseRule_EveryWeek(t *testing.T) {
	rule, warnings := ParseRule(row("Wednesday", "Every week", "10:00 AM", "2:00 PM"))
	require.NotNil(t, rule)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.CadenceEveryWeek, rule.Cadence)
	assert.Equal(t, domain.Wednesday, rule.Weekday)
	assert.Equal(t, domain.NewTimeOfDay(10, 0), rule.Start)
	assert.Equal(t, domain.NewTimeOfDay(14, 0), rule.End)
}

func TestParseRule_FrequencyCaseInsensitive(t *testing.T) {
	rule, _ := ParseRule(row("Monday", "  EVERY WEEK ", "9:00 AM", "12:00 PM"))
	require.NotNil(t, rule)
	assert.Equal(t, domain.CadenceEveryWeek, rule.Cadence)
}

func TestParseRule_EveryOtherWeek(t *testing.T) {
	rule, warnings := ParseRule(row("Tuesday", "Every Other Week", "1:00 PM", "5:00 PM"))
	require.NotNil(t, rule)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.CadenceEveryOtherWeek, rule.Cadence)
}

func TestParseRule_WeeksOfMonth(t *testing.T) {
	cases := []struct {
		freq  string
		weeks []int
	}{
		{"1st of the Month", []int{1}},
		{"1st, 3rd of the Month", []int{1, 3}},
		{"2nd and 4th Saturdays", []int{2, 4}},
		{"(weeks 2 and 4)", []int{2, 4}},
		{"3rd, 1st of the Month", []int{1, 3}},
		{"1st, 1st of the Month", []int{1}},
	}
	for _, tc := range cases {
		rule, warnings := ParseRule(row("Saturday", tc.freq, "8:00 AM", "12:00 PM"))
		require.NotNil(t, rule, "freq=%q", tc.freq)
		assert.Empty(t, warnings, "freq=%q", tc.freq)
		assert.Equal(t, domain.CadenceWeeksOfMonth, rule.Cadence, "freq=%q", tc.freq)
		assert.Equal(t, tc.weeks, rule.WeeksOfMonth, "freq=%q", tc.freq)
	}
}

func TestParseRule_ClosureProducesNoRule(t *testing.T) {
	for _, freq := range []string{"", "   ", "Closed", "closed", "N/A", "None"} {
		rule, warnings := ParseRule(row("Monday", freq, "", ""))
		assert.Nil(t, rule, "freq=%q", freq)
		assert.Empty(t, warnings, "freq=%q", freq)
	}
}

func TestParseRule_UnrecognizedFrequencyWarns(t *testing.T) {
	rule, warnings := ParseRule(row("Monday", "garbled nonsense", "9:00 AM", "1:00 PM"))
	assert.Nil(t, rule)
	require.Len(t, warnings, 1)
	assert.Equal(t, "AG-001", warnings[0].AgencyID)
	assert.Contains(t, warnings[0].Reason, "unrecognized frequency")
}

func TestParseRule_BadWeekdayWarns(t *testing.T) {
	rule, warnings := ParseRule(row("Someday", "Every week", "9:00 AM", "1:00 PM"))
	assert.Nil(t, rule)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "weekday")
}

func TestParseRule_MissingTimesFallBackToAllDay(t *testing.T) {
	rule, warnings := ParseRule(row("Friday", "Every week", "", ""))
	require.NotNil(t, rule)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.Midnight, rule.Start)
	assert.Equal(t, domain.EndOfDay, rule.End)

	rule, _ = ParseRule(row("Friday", "Every week", "9:00 AM", ""))
	require.NotNil(t, rule)
	assert.Equal(t, domain.Midnight, rule.Start, "one missing time means all-day")
	assert.Equal(t, domain.EndOfDay, rule.End)
}

func TestParseRule_SwappedTimesCorrectedWithWarning(t *testing.T) {
	rule, warnings := ParseRule(row("Friday", "Every week", "2:00 PM", "10:00 AM"))
	require.NotNil(t, rule)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "swapping")
	assert.Equal(t, domain.NewTimeOfDay(10, 0), rule.Start)
	assert.Equal(t, domain.NewTimeOfDay(14, 0), rule.End)
}

func TestParseRule_UnparseableTimeWarnsAndUsesAllDay(t *testing.T) {
	rule, warnings := ParseRule(row("Friday", "Every week", "morningish", "1:00 PM"))
	require.NotNil(t, rule)
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.Midnight, rule.Start)
	assert.Equal(t, domain.EndOfDay, rule.End)
}

func TestParseAgencyRules_BadRowDoesNotAbortBatch(t *testing.T) {
	rows := []RawHoursRow{
		row("Wednesday", "Every week", "10:00 AM", "2:00 PM"),
		row("Monday", "garbled nonsense", "9:00 AM", "1:00 PM"),
		row("Friday", "1st, 3rd of the Month", "8:00 AM", "12:00 PM"),
	}
	rules, warnings := ParseAgencyRules(rows)
	assert.Len(t, rules, 2, "the malformed row is dropped, the rest survive")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "unrecognized frequency")
}
