package contract

import (
	"time"

	"github.com/cafb-tech/alacarte/internal/domain"
)

// MatchRequest asks the schedule query service which of the candidate
// agencies (already distance-filtered upstream) can serve the requested
// slot. Determinism contract: identical inputs, including Slot.Date, yield
// identical outputs — the service reads no clock of its own.
type MatchRequest struct {
	Agencies []domain.Agency
	Slot     domain.RequestedSlot

	// IncludeUpcoming keeps closed agencies in the response, annotated
	// with their next open date, instead of filtering to open-today only.
	IncludeUpcoming bool

	// HorizonDays overrides the configured forward-scan horizon when set.
	HorizonDays *int
}

// AgencyMatch pairs one agency with its availability resolution.
type AgencyMatch struct {
	Agency domain.Agency
	Result domain.ResolutionResult
}

// MatchResponse is the annotated agency list, sorted by distance with
// next-open-date and agency id as tiebreaks.
type MatchResponse struct {
	Date     time.Time
	Period   domain.Period
	Matches  []AgencyMatch
	Warnings []domain.ScheduleWarning
}

type MatchErrorCode string

const (
	ErrInvalidPeriod MatchErrorCode = "INVALID_PERIOD"
	ErrInvalidDate   MatchErrorCode = "INVALID_DATE"
	ErrInternalError MatchErrorCode = "INTERNAL_ERROR"
)

type MatchError struct {
	Code    MatchErrorCode
	Message string
}

func (e *MatchError) Error() string {
	return string(e.Code) + ": " + e.Message
}
