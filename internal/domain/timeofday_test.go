package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"9:00 AM", NewTimeOfDay(9, 0)},
		{"09:00", NewTimeOfDay(9, 0)},
		{"12:00 PM", NewTimeOfDay(12, 0)},
		{"12:00 AM", NewTimeOfDay(0, 0)},
		{"2:30PM", NewTimeOfDay(14, 30)},
		{"2 PM", NewTimeOfDay(14, 0)},
		{"14:30", NewTimeOfDay(14, 30)},
		{"14:30:00", NewTimeOfDay(14, 30)},
		{"  4:15 pm ", NewTimeOfDay(16, 15)},
		{"23:59", EndOfDay},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		require.NoError(t, err, "input=%q", tc.in)
		assert.Equal(t, tc.want, got, "input=%q", tc.in)
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "25:00", "noonish", "9:99 AM"} {
		_, err := ParseTimeOfDay(in)
		assert.Error(t, err, "input=%q", in)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", NewTimeOfDay(9, 5).String())
	assert.Equal(t, "23:59", EndOfDay.String())
	assert.Equal(t, "00:00", Midnight.String())
}

func TestTimeOfDay_Clock12(t *testing.T) {
	assert.Equal(t, "9:00 AM", NewTimeOfDay(9, 0).Clock12())
	assert.Equal(t, "12:00 PM", NewTimeOfDay(12, 0).Clock12())
	assert.Equal(t, "12:30 AM", NewTimeOfDay(0, 30).Clock12())
	assert.Equal(t, "11:59 PM", EndOfDay.Clock12())
}

func TestTimeWindow_String(t *testing.T) {
	w := TimeWindow{Start: NewTimeOfDay(9, 0), End: NewTimeOfDay(13, 0)}
	assert.Equal(t, "09:00-13:00", w.String())
}
