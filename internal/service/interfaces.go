package service

import (
	"context"

	"github.com/cafb-tech/alacarte/internal/contract"
	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

// MatchService resolves a set of candidate agencies against a requested
// pickup slot.
type MatchService interface {
	Match(ctx context.Context, req contract.MatchRequest) (*contract.MatchResponse, error)
}

// FindService runs the full pipeline: geocode, rank nearby agencies, load
// and parse their hours, match, and generate a recommendation.
type FindService interface {
	Find(ctx context.Context, req contract.FindRequest) (*contract.FindResponse, error)
}

// AgencyService exposes the agency store to the CLI.
type AgencyService interface {
	GetByID(ctx context.Context, id string) (*domain.Agency, error)
	List(ctx context.Context) ([]*domain.Agency, error)
	Hours(ctx context.Context, agencyID string) ([]schedule.RawHoursRow, error)
	Delete(ctx context.Context, id string) error
}
