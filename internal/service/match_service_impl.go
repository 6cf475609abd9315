package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cafb-tech/alacarte/internal/contract"
	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

type matchService struct {
	cfg    MatchConfig
	logger *slog.Logger
}

// MatchConfig carries the schedule-resolution settings shared by every
// match call.
type MatchConfig struct {
	Periods             map[domain.Period]domain.TimeWindow
	HorizonDays         int
	EveryOtherWeekGrace bool
}

func NewMatchService(cfg MatchConfig, logger *slog.Logger) MatchService {
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = schedule.DefaultHorizonDays
	}
	return &matchService{cfg: cfg, logger: logger}
}

// Match resolves every candidate agency against the requested slot.
// Identical inputs yield identical outputs: nothing here reads a clock.
func (s *matchService) Match(ctx context.Context, req contract.MatchRequest) (*contract.MatchResponse, error) {
	if !domain.ValidPeriods[string(req.Slot.Period)] {
		return nil, &contract.MatchError{
			Code:    contract.ErrInvalidPeriod,
			Message: fmt.Sprintf("unknown period %q", req.Slot.Period),
		}
	}
	if req.Slot.Date.IsZero() {
		return nil, &contract.MatchError{
			Code:    contract.ErrInvalidDate,
			Message: "requested date must be set",
		}
	}

	resolver := schedule.NewResolver(schedule.ResolverConfig{
		Periods:             s.cfg.Periods,
		HorizonDays:         domain.IntFromPtrWithDefault(s.cfg.HorizonDays, req.HorizonDays),
		EveryOtherWeekGrace: s.cfg.EveryOtherWeekGrace,
	})

	date := schedule.DateOnly(req.Slot.Date)
	slot := domain.RequestedSlot{Date: date, Period: req.Slot.Period}

	resp := &contract.MatchResponse{Date: date, Period: req.Slot.Period}
	for _, agency := range req.Agencies {
		result, err := resolver.Resolve(agency, slot)
		if err != nil {
			return nil, &contract.MatchError{
				Code:    contract.ErrInternalError,
				Message: fmt.Sprintf("resolving agency %s: %v", agency.ID, err),
			}
		}

		for _, w := range result.Warnings {
			s.logger.Warn("schedule data problem",
				"agency_id", w.AgencyID, "weekday", w.Weekday, "reason", w.Reason)
		}
		resp.Warnings = append(resp.Warnings, result.Warnings...)

		if !req.IncludeUpcoming && !result.IsOpen() {
			continue
		}
		resp.Matches = append(resp.Matches, contract.AgencyMatch{Agency: agency, Result: result})
	}

	sortMatches(resp.Matches)
	return resp, nil
}

// sortMatches orders by distance, then next open date (open today first),
// then agency id so equal-distance agencies order deterministically.
func sortMatches(matches []contract.AgencyMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Agency.DistanceMiles != b.Agency.DistanceMiles {
			return a.Agency.DistanceMiles < b.Agency.DistanceMiles
		}
		ad, bd := nextDateRank(a.Result), nextDateRank(b.Result)
		if ad != bd {
			return ad < bd
		}
		return a.Agency.ID < b.Agency.ID
	})
}

// nextDateRank collapses resolution state into a sortable day ordinal:
// open today sorts before any future date, unknown sorts last.
func nextDateRank(r domain.ResolutionResult) int64 {
	switch r.State {
	case domain.StateOpenToday:
		return 0
	case domain.StateClosedWithNext:
		if r.NextOpenDate != nil {
			return r.NextOpenDate.Unix()
		}
	}
	return 1<<63 - 1
}
