package domain

// Cadence is the recurrence pattern governing which weeks of a month an
// agency is open on a given weekday.
type Cadence string

const (
	CadenceEveryWeek     Cadence = "every_week"
	CadenceWeeksOfMonth  Cadence = "weeks_of_month"
	CadenceEveryOtherWeek Cadence = "every_other_week"
	CadenceNone          Cadence = "none"
)

// Period is one of the fixed daily time buckets used for both agency hours
// and user requests.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
	PeriodNight     Period = "night"
)

// ValidPeriods is the canonical set of accepted period names.
var ValidPeriods = map[string]bool{
	"morning": true, "afternoon": true, "evening": true, "night": true,
}

type ResolutionState string

const (
	StateUnresolved     ResolutionState = "unresolved"
	StateOpenToday      ResolutionState = "open_today"
	StateClosedWithNext ResolutionState = "closed_with_next"
	StateClosedUnknown  ResolutionState = "closed_unknown"
)

type AgencyType string

const (
	AgencyMarket          AgencyType = "market"
	AgencyShoppingPartner AgencyType = "shopping_partner"
)
