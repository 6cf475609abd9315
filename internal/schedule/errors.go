package schedule

import "errors"

var (
	// ErrMissingAnchor indicates an every-other-week rule has no last
	// service date to fix its 14-day parity. The rule is ignored for
	// resolution; the agency may still resolve via other rules.
	ErrMissingAnchor = errors.New("every-other-week rule missing last service date")

	// ErrHorizonExceeded indicates the forward scan found no open date
	// within the configured horizon. Resolutions map this to
	// StateClosedUnknown rather than surfacing it.
	ErrHorizonExceeded = errors.New("no open date within scan horizon")

	// ErrUnknownPeriod indicates a requested period name is not in the
	// configured period table. This is a caller bug, not dirty input data,
	// and is returned immediately.
	ErrUnknownPeriod = errors.New("unknown period")
)
