package service

import (
	"context"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/repository"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

type agencyService struct {
	agencies repository.AgencyRepo
	hours    repository.HoursRepo
}

func NewAgencyService(agencies repository.AgencyRepo, hours repository.HoursRepo) AgencyService {
	return &agencyService{agencies: agencies, hours: hours}
}

func (s *agencyService) GetByID(ctx context.Context, id string) (*domain.Agency, error) {
	return s.agencies.GetByID(ctx, id)
}

func (s *agencyService) List(ctx context.Context) ([]*domain.Agency, error) {
	return s.agencies.List(ctx)
}

func (s *agencyService) Hours(ctx context.Context, agencyID string) ([]schedule.RawHoursRow, error) {
	return s.hours.ListByAgency(ctx, agencyID)
}

func (s *agencyService) Delete(ctx context.Context, id string) error {
	return s.agencies.Delete(ctx, id)
}
