package testutil

import (
	"time"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/google/uuid"
)

// Agency options
type AgencyOption func(*domain.Agency)

func WithAgencyType(t domain.AgencyType) AgencyOption {
	return func(a *domain.Agency) {
		a.Type = t
	}
}

func WithCoordinates(lat, lon float64) AgencyOption {
	return func(a *domain.Agency) {
		a.Latitude = lat
		a.Longitude = lon
	}
}

func WithDistanceMiles(d float64) AgencyOption {
	return func(a *domain.Agency) {
		a.DistanceMiles = d
	}
}

func WithLastServiceDate(d time.Time) AgencyOption {
	return func(a *domain.Agency) {
		a.LastServiceDate = &d
	}
}

func WithSchedule(rules ...domain.RecurrenceRule) AgencyOption {
	return func(a *domain.Agency) {
		a.Schedule = rules
	}
}

func WithCulturesServed(cultures ...string) AgencyOption {
	return func(a *domain.Agency) {
		a.CulturesServed = cultures
	}
}

func WithRegion(region string) AgencyOption {
	return func(a *domain.Agency) {
		a.Region = region
	}
}

func NewTestAgency(name string, opts ...AgencyOption) *domain.Agency {
	a := &domain.Agency{
		ID:      uuid.New().String(),
		Name:    name,
		Type:    domain.AgencyMarket,
		Address: "123 Test St, Washington, DC",
		Region:  "DC",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Rule options
type RuleOption func(*domain.RecurrenceRule)

func WithCadence(c domain.Cadence) RuleOption {
	return func(r *domain.RecurrenceRule) {
		r.Cadence = c
	}
}

func WithWeeksOfMonth(weeks ...int) RuleOption {
	return func(r *domain.RecurrenceRule) {
		r.Cadence = domain.CadenceWeeksOfMonth
		r.WeeksOfMonth = weeks
	}
}

func WithWindow(start, end domain.TimeOfDay) RuleOption {
	return func(r *domain.RecurrenceRule) {
		r.Start = start
		r.End = end
	}
}

// NewTestRule builds a weekly rule open 09:00 to 17:00 on the given weekday.
func NewTestRule(weekday domain.Weekday, opts ...RuleOption) domain.RecurrenceRule {
	r := domain.RecurrenceRule{
		Weekday: weekday,
		Cadence: domain.CadenceEveryWeek,
		Start:   domain.NewTimeOfDay(9, 0),
		End:     domain.NewTimeOfDay(17, 0),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
