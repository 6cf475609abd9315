package repository

import (
	"context"
	"errors"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

var ErrNotFound = errors.New("not found")

// AgencyRepo persists agency records.
type AgencyRepo interface {
	Upsert(ctx context.Context, agency *domain.Agency) error
	GetByID(ctx context.Context, id string) (*domain.Agency, error)
	List(ctx context.Context) ([]*domain.Agency, error)
	ListWithCoordinates(ctx context.Context) ([]*domain.Agency, error)
	Delete(ctx context.Context, id string) error
}

// HoursRepo persists the raw opening-hours rows attached to an agency.
// Rows are stored as text exactly as imported; parsing into recurrence
// rules happens at query time.
type HoursRepo interface {
	ReplaceForAgency(ctx context.Context, agencyID string, rows []schedule.RawHoursRow) error
	ListByAgency(ctx context.Context, agencyID string) ([]schedule.RawHoursRow, error)
}
