package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a day of the week with Monday = 0, matching the ISO weekday
// numbering minus one. Go's time.Weekday starts at Sunday, so conversions
// go through FromTime/TimeWeekday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// Valid reports whether w is in the Monday..Sunday range.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// FromTime converts Go's Sunday-based weekday to the Monday-based one.
func FromTime(w time.Weekday) Weekday {
	return Weekday((int(w) + 6) % 7)
}

// TimeWeekday converts back to Go's Sunday-based weekday.
func (w Weekday) TimeWeekday() time.Weekday {
	return time.Weekday((int(w) + 1) % 7)
}

// ParseWeekday maps a day label from the source data ("Monday", "mon") to a
// Weekday. Labels are matched case-insensitively on the full name or the
// first three letters.
func ParseWeekday(label string) (Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	if len(s) > 3 {
		for i, name := range weekdayNames {
			if s == strings.ToLower(name) {
				return Weekday(i), nil
			}
		}
	}
	if len(s) >= 3 {
		for i, name := range weekdayNames {
			if s[:3] == strings.ToLower(name[:3]) {
				return Weekday(i), nil
			}
		}
	}
	return 0, fmt.Errorf("unrecognized weekday label %q", label)
}
