package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cafb-tech/alacarte/internal/contract"
	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/geo"
	"github.com/cafb-tech/alacarte/internal/llm"
	"github.com/cafb-tech/alacarte/internal/repository"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

type findService struct {
	geocoder  geo.Geocoder
	locator   geo.Locator
	agencies  repository.AgencyRepo
	hours     repository.HoursRepo
	matcher   MatchService
	responder llm.Responder
	logger    *slog.Logger
}

func NewFindService(
	geocoder geo.Geocoder,
	locator geo.Locator,
	agencies repository.AgencyRepo,
	hours repository.HoursRepo,
	matcher MatchService,
	responder llm.Responder,
	logger *slog.Logger,
) FindService {
	return &findService{
		geocoder:  geocoder,
		locator:   locator,
		agencies:  agencies,
		hours:     hours,
		matcher:   matcher,
		responder: responder,
		logger:    logger,
	}
}

func (s *findService) Find(ctx context.Context, req contract.FindRequest) (*contract.FindResponse, error) {
	traceID := uuid.New().String()
	logger := s.logger.With("trace_id", traceID)

	origin, err := s.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		return nil, fmt.Errorf("geocoding address: %w", err)
	}
	logger.Info("address geocoded", "lat", origin.Latitude, "lon", origin.Longitude)

	nearby, err := s.locator.FindNearby(ctx, origin, req.RadiusMiles, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("finding nearby agencies: %w", err)
	}
	logger.Info("agencies in radius", "count", len(nearby), "radius_miles", req.RadiusMiles)

	candidates, warnings, err := s.loadCandidates(ctx, nearby, logger)
	if err != nil {
		return nil, err
	}

	matchResp, err := s.matcher.Match(ctx, contract.MatchRequest{
		Agencies:        candidates,
		Slot:            domain.RequestedSlot{Date: req.Date, Period: req.Period},
		IncludeUpcoming: req.IncludeUpcoming,
	})
	if err != nil {
		return nil, err
	}

	resp := &contract.FindResponse{
		TraceID:  traceID,
		Matches:  matchResp.Matches,
		Warnings: append(warnings, matchResp.Warnings...),
	}
	resp.Recommendation = s.recommend(ctx, req, matchResp, logger)
	return resp, nil
}

// loadCandidates hydrates each nearby hit into a full agency with its
// parsed schedule. Parse warnings degrade rules, never the pipeline.
func (s *findService) loadCandidates(ctx context.Context, nearby []geo.Nearby, logger *slog.Logger) ([]domain.Agency, []domain.ScheduleWarning, error) {
	var (
		candidates []domain.Agency
		warnings   []domain.ScheduleWarning
	)
	for _, hit := range nearby {
		agency, err := s.agencies.GetByID(ctx, hit.AgencyID)
		if err != nil {
			return nil, nil, fmt.Errorf("loading agency %s: %w", hit.AgencyID, err)
		}

		rows, err := s.hours.ListByAgency(ctx, hit.AgencyID)
		if err != nil {
			return nil, nil, fmt.Errorf("loading hours for agency %s: %w", hit.AgencyID, err)
		}

		rules, parseWarnings := schedule.ParseAgencyRules(rows)
		for _, w := range parseWarnings {
			logger.Warn("unparseable hours row",
				"agency_id", w.AgencyID, "weekday", w.Weekday, "raw", w.Raw, "reason", w.Reason)
		}
		warnings = append(warnings, parseWarnings...)

		agency.DistanceMiles = hit.DistanceMiles
		agency.Schedule = rules
		candidates = append(candidates, *agency)
	}
	return candidates, warnings, nil
}

// recommend generates the natural-language summary, falling back to
// deterministic text when generation is disabled or fails.
func (s *findService) recommend(ctx context.Context, req contract.FindRequest, matchResp *contract.MatchResponse, logger *slog.Logger) string {
	if !s.responder.Enabled() {
		return llm.FallbackRecommendation(matchResp)
	}

	system, user := llm.BuildRecommendationPrompt(req, matchResp)
	text, err := s.responder.Respond(ctx, system, user)
	if err != nil {
		logger.Warn("recommendation generation failed, using fallback", "error", err)
		return llm.FallbackRecommendation(matchResp)
	}
	return text
}
