package contract

import (
	"time"

	"github.com/cafb-tech/alacarte/internal/domain"
)

// FindRequest drives the full pipeline: geocode the user's address, rank
// nearby agencies, resolve their schedules against the requested slot, and
// generate a recommendation.
type FindRequest struct {
	Address     string
	RadiusMiles float64
	Limit       int

	Date   time.Time
	Period domain.Period

	IncludeUpcoming bool

	// User preferences passed through to the response generator.
	DietaryNotes []string
	Language     string
}

func NewFindRequest(address string, date time.Time, period domain.Period) FindRequest {
	return FindRequest{
		Address:         address,
		RadiusMiles:     10,
		Limit:           25,
		Date:            date,
		Period:          period,
		IncludeUpcoming: true,
	}
}

// FindResponse carries the annotated matches plus the generated
// natural-language recommendation.
type FindResponse struct {
	TraceID        string
	Matches        []AgencyMatch
	Recommendation string
	Warnings       []domain.ScheduleWarning
}
