package schedule

import (
	"testing"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchWindow_MorningOverlapClips(t *testing.T) {
	hours := domain.TimeWindow{Start: domain.NewTimeOfDay(9, 0), End: domain.NewTimeOfDay(13, 0)}
	morning := DefaultPeriods()[domain.PeriodMorning]

	got, ok := MatchWindow(hours, morning)
	require.True(t, ok)
	assert.Equal(t, domain.NewTimeOfDay(9, 0), got.Start)
	assert.Equal(t, domain.NewTimeOfDay(11, 59), got.End)
}

func TestMatchWindow_EveningNoOverlap(t *testing.T) {
	hours := domain.TimeWindow{Start: domain.NewTimeOfDay(9, 0), End: domain.NewTimeOfDay(13, 0)}
	evening := DefaultPeriods()[domain.PeriodEvening]

	_, ok := MatchWindow(hours, evening)
	assert.False(t, ok)
}

func TestMatchWindow_TouchingBoundaryCountsAsOpen(t *testing.T) {
	// An agency closing exactly when the period starts is still a match at
	// that instant (the source data's inclusive "Ending Time").
	hours := domain.TimeWindow{Start: domain.NewTimeOfDay(8, 0), End: domain.NewTimeOfDay(12, 0)}
	afternoon := DefaultPeriods()[domain.PeriodAfternoon]

	got, ok := MatchWindow(hours, afternoon)
	require.True(t, ok)
	assert.Equal(t, domain.NewTimeOfDay(12, 0), got.Start)
	assert.Equal(t, domain.NewTimeOfDay(12, 0), got.End)
}

func TestMatchWindow_ContainedWindow(t *testing.T) {
	hours := domain.TimeWindow{Start: domain.NewTimeOfDay(13, 0), End: domain.NewTimeOfDay(15, 0)}
	afternoon := DefaultPeriods()[domain.PeriodAfternoon]

	got, ok := MatchWindow(hours, afternoon)
	require.True(t, ok)
	assert.Equal(t, hours, got, "agency hours inside the period stay unclipped")
}

func TestDefaultPeriods_CoverAllPeriodNames(t *testing.T) {
	periods := DefaultPeriods()
	for name := range domain.ValidPeriods {
		w, ok := periods[domain.Period(name)]
		require.True(t, ok, "period %q missing from defaults", name)
		assert.True(t, w.Start < w.End, "period %q window must be ordered", name)
	}
}
