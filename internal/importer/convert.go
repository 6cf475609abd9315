package importer

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cafb-tech/alacarte/internal/db"
	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/repository"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

// AgencyBundle is one agency with its hours rows, ready for persistence.
type AgencyBundle struct {
	Agency *domain.Agency
	Hours  []schedule.RawHoursRow
}

// Convert groups validated records by agency and builds persistence-ready
// bundles. Call ValidateRecord first; Convert assumes fields parse.
// Agency metadata comes from the first record seen for each agency, and
// bundle order follows first appearance in the export.
func Convert(records []Record) []AgencyBundle {
	byID := make(map[string]*AgencyBundle)
	var order []string

	for _, rec := range records {
		bundle, ok := byID[rec.AgencyID]
		if !ok {
			bundle = &AgencyBundle{Agency: convertAgency(rec)}
			byID[rec.AgencyID] = bundle
			order = append(order, rec.AgencyID)
		}

		if rec.Weekday == "" && rec.Frequency == "" {
			continue
		}
		bundle.Hours = append(bundle.Hours, schedule.RawHoursRow{
			AgencyID:      rec.AgencyID,
			WeekdayLabel:  rec.Weekday,
			FrequencyText: rec.Frequency,
			StartTimeText: domain.CoalesceStr(rec.StartTime, rec.StartTimeAlt),
			EndTimeText:   domain.CoalesceStr(rec.EndTime, rec.EndTimeAlt),
		})
	}

	bundles := make([]AgencyBundle, 0, len(order))
	for _, id := range order {
		bundles = append(bundles, *byID[id])
	}
	return bundles
}

func convertAgency(rec Record) *domain.Agency {
	agency := &domain.Agency{
		ID:                 rec.AgencyID,
		Name:               rec.Name,
		Address:            rec.Address,
		Region:             rec.Region,
		Phone:              rec.Phone,
		Requirements:       rec.Requirements,
		FoodFormat:         rec.FoodFormat,
		DistributionModels: rec.DistributionModels,
		CulturesServed:     splitMulti(rec.CulturesServed),
		WraparoundServices: splitMulti(rec.WraparoundServices),
	}

	switch strings.ToLower(rec.Type) {
	case "shopping_partner":
		agency.Type = domain.AgencyShoppingPartner
	default:
		agency.Type = domain.AgencyMarket
	}

	agency.Latitude, _ = strconv.ParseFloat(rec.Latitude, 64)
	agency.Longitude, _ = strconv.ParseFloat(rec.Longitude, 64)
	agency.ByAppointmentOnly, _ = parseBool(rec.ByAppointmentOnly)

	if rec.LastServiceDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", rec.LastServiceDate, time.UTC); err == nil {
			agency.LastServiceDate = &t
		}
	}
	return agency
}

func splitMulti(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Result summarizes an import run.
type Result struct {
	AgenciesImported int
	RowsSkipped      int
	RowErrors        []RowError
}

// Importer ingests hours-of-operation exports into the agency store.
type Importer struct {
	uow    db.UnitOfWork
	logger *slog.Logger
}

func New(uow db.UnitOfWork, logger *slog.Logger) *Importer {
	return &Importer{uow: uow, logger: logger}
}

// Import validates, converts, and persists an export. Rows that fail
// validation are skipped and reported in the result; each agency's record
// and hours land in a single transaction so a partial write never survives.
func (imp *Importer) Import(ctx context.Context, records []Record) (*Result, error) {
	result := &Result{}

	valid := make([]Record, 0, len(records))
	for _, rec := range records {
		if errs := ValidateRecord(rec); len(errs) > 0 {
			result.RowErrors = append(result.RowErrors, errs...)
			result.RowsSkipped++
			for _, e := range errs {
				imp.logger.Warn("skipping export row",
					"line", e.Line, "field", e.Field, "reason", e.Reason)
			}
			continue
		}
		valid = append(valid, rec)
	}

	for _, bundle := range Convert(valid) {
		err := imp.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			agencies := repository.NewSQLiteAgencyRepo(tx)
			hours := repository.NewSQLiteHoursRepo(tx)
			if err := agencies.Upsert(ctx, bundle.Agency); err != nil {
				return err
			}
			return hours.ReplaceForAgency(ctx, bundle.Agency.ID, bundle.Hours)
		})
		if err != nil {
			return result, err
		}
		result.AgenciesImported++
	}

	return result, nil
}
