package repository

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(dateLayout)
}

func parseNullableTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, *s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Coordinates are stored as NULL when unknown; the domain zero value
// (0, 0) marks an agency without a geocoded location.
func nullableCoord(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// List columns such as cultures_served hold semicolon-joined values.
func joinList(items []string) string {
	return strings.Join(items, ";")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
