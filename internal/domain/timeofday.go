package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a local wall-clock time stored as minutes since midnight.
// Agencies and users are assumed to share one timezone, so no zone is
// modeled.
type TimeOfDay int

const (
	Midnight TimeOfDay = 0
	EndOfDay TimeOfDay = 23*60 + 59
)

// NewTimeOfDay builds a TimeOfDay from an hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t < o }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t > o }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Clock12 renders the time in the source data's 12-hour style, e.g. "2:30 PM".
func (t TimeOfDay) Clock12() string {
	h, m := t.Hour(), t.Minute()
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

// timeOfDayLayouts covers the formats seen in the hours-of-operation exports:
// "9:00 AM", "09:00", "2 PM", "14:30:00".
var timeOfDayLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
	"15:04",
	"15:04:05",
}

// ParseTimeOfDay parses a time-of-day string from the source data.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	if trimmed == "" {
		return 0, fmt.Errorf("empty time of day")
	}
	for _, layout := range timeOfDayLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return NewTimeOfDay(parsed.Hour(), parsed.Minute()), nil
		}
	}
	return 0, fmt.Errorf("unrecognized time of day %q", s)
}

// TimeWindow is a [Start, End] time-of-day span.
type TimeWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (w TimeWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}
