package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/cafb-tech/alacarte/internal/domain"
)

// DefaultHorizonDays bounds the next-open-date forward scan.
const DefaultHorizonDays = 60

// ResolverConfig carries the query-batch configuration: the period table,
// the scan horizon, and the grace policy for anchor-less every-other-week
// rules. Built once per run, read-only thereafter.
type ResolverConfig struct {
	Periods     map[domain.Period]domain.TimeWindow
	HorizonDays int

	// EveryOtherWeekGrace lets an every-other-week rule with no last
	// service date still participate in the next-open-date search as if it
	// were weekly. It never makes such a rule match the requested date.
	EveryOtherWeekGrace bool
}

// Resolver answers, per agency, "open on the requested date within the
// requested period?" and, if not, "next open date on/after it?". Stateless
// across calls; every Resolve recomputes from scratch.
type Resolver struct {
	cfg ResolverConfig
}

func NewResolver(cfg ResolverConfig) *Resolver {
	if cfg.Periods == nil {
		cfg.Periods = DefaultPeriods()
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = DefaultHorizonDays
	}
	return &Resolver{cfg: cfg}
}

// usableRule is one schedule rule that survived validation, tagged with the
// anchor it needs and whether it is only usable under the grace policy.
type usableRule struct {
	idx         int
	rule        domain.RecurrenceRule
	anchor      *time.Time
	graceWeekly bool
}

// Resolve runs the full availability resolution for one agency. The only
// error it returns is an unknown period name, which indicates a caller or
// configuration bug; all data-quality problems degrade single rules and are
// reported as warnings on the result.
func (r *Resolver) Resolve(agency domain.Agency, slot domain.RequestedSlot) (domain.ResolutionResult, error) {
	periodWindow, ok := r.cfg.Periods[slot.Period]
	if !ok {
		return domain.ResolutionResult{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, slot.Period)
	}
	date := DateOnly(slot.Date)

	result := domain.ResolutionResult{State: domain.StateUnresolved}
	usable := r.gatherRules(agency, &result)
	cache := newProjectionCache()

	if w, open := r.openOn(usable, date, periodWindow, cache); open {
		result.State = domain.StateOpenToday
		result.EffectiveWindow = &w
		return result, nil
	}

	next, err := r.nextOpenDate(usable, date, cache)
	if errors.Is(err, ErrHorizonExceeded) {
		result.State = domain.StateClosedUnknown
		return result, nil
	}
	result.State = domain.StateClosedWithNext
	result.NextOpenDate = &next
	return result, nil
}

// gatherRules validates the agency's schedule and drops what cannot be
// used, attaching a warning per dropped rule.
func (r *Resolver) gatherRules(agency domain.Agency, result *domain.ResolutionResult) []usableRule {
	warn := func(raw, reason string) {
		result.Warnings = append(result.Warnings, domain.ScheduleWarning{
			AgencyID: agency.ID,
			Raw:      raw,
			Reason:   reason,
		})
	}

	var usable []usableRule
	for i, rule := range agency.Schedule {
		if rule.Cadence == domain.CadenceNone {
			continue
		}
		if err := rule.Validate(); err != nil {
			warn(fmt.Sprintf("rule %d", i), "invalid rule ignored: "+err.Error())
			continue
		}
		if rule.Cadence == domain.CadenceEveryOtherWeek && agency.LastServiceDate == nil {
			warn(rule.Weekday.String(), ErrMissingAnchor.Error())
			if r.cfg.EveryOtherWeekGrace {
				usable = append(usable, usableRule{idx: i, rule: rule, graceWeekly: true})
			}
			continue
		}
		usable = append(usable, usableRule{idx: i, rule: rule, anchor: agency.LastServiceDate})
	}
	return usable
}

// openOn checks the requested date against every usable rule and, on a
// period overlap, returns the clipped window. When several rules match the
// date, the one with the earliest operating start wins.
func (r *Resolver) openOn(usable []usableRule, date time.Time, period domain.TimeWindow, cache *projectionCache) (domain.TimeWindow, bool) {
	var best domain.TimeWindow
	var bestStart domain.TimeOfDay
	found := false
	for _, u := range usable {
		if u.graceWeekly {
			continue
		}
		if !u.fires(date, cache) {
			continue
		}
		w, ok := MatchWindow(u.rule.Window(), period)
		if !ok {
			continue
		}
		if !found || u.rule.Start < bestStart {
			best = w
			bestStart = u.rule.Start
			found = true
		}
	}
	return best, found
}

// nextOpenDate scans forward day by day from date, re-projecting per month
// crossed, for the earliest date any rule fires at all. The period filter
// is deliberately ignored: "next open date" is date-granularity.
func (r *Resolver) nextOpenDate(usable []usableRule, date time.Time, cache *projectionCache) (time.Time, error) {
	for off := 0; off <= r.cfg.HorizonDays; off++ {
		d := date.AddDate(0, 0, off)
		for _, u := range usable {
			if u.fires(d, cache) {
				return d, nil
			}
		}
	}
	return time.Time{}, ErrHorizonExceeded
}

// fires reports whether the rule fires on the given UTC-midnight date.
func (u usableRule) fires(date time.Time, cache *projectionCache) bool {
	if u.graceWeekly {
		return domain.FromTime(date.Weekday()) == u.rule.Weekday
	}
	if u.rule.Cadence == domain.CadenceEveryOtherWeek {
		return ParityMatches(date, *u.anchor)
	}
	return cache.contains(u, date)
}

// projectionCache memoizes per-rule month projections for the duration of
// one resolution.
type projectionCache struct {
	months map[projectionKey][]time.Time
}

type projectionKey struct {
	ruleIdx int
	year    int
	month   time.Month
}

func newProjectionCache() *projectionCache {
	return &projectionCache{months: make(map[projectionKey][]time.Time)}
}

func (c *projectionCache) contains(u usableRule, date time.Time) bool {
	key := projectionKey{ruleIdx: u.idx, year: date.Year(), month: date.Month()}
	dates, ok := c.months[key]
	if !ok {
		proj, err := ProjectMonth(u.rule, key.year, key.month)
		if err != nil {
			// Validated rules cannot reach here; treat as never firing.
			proj = MonthProjection{}
		}
		dates = proj.Dates
		c.months[key] = dates
	}
	for _, d := range dates {
		if d.Equal(date) {
			return true
		}
	}
	return false
}
