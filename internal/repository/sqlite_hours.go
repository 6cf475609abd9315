package repository

import (
	"context"
	"fmt"

	"github.com/cafb-tech/alacarte/internal/db"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

// SQLiteHoursRepo stores raw opening-hours rows. Rows keep the imported
// text verbatim so a rule-parser change never requires a re-import.
type SQLiteHoursRepo struct {
	db db.DBTX
}

func NewSQLiteHoursRepo(dbtx db.DBTX) *SQLiteHoursRepo {
	return &SQLiteHoursRepo{db: dbtx}
}

// ReplaceForAgency swaps the agency's hours rows for the given set.
// Callers importing a fresh export run this inside a unit of work so the
// delete and inserts land together.
func (r *SQLiteHoursRepo) ReplaceForAgency(ctx context.Context, agencyID string, rows []schedule.RawHoursRow) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM agency_hours WHERE agency_id = ?`, agencyID); err != nil {
		return fmt.Errorf("clearing hours for agency %s: %w", agencyID, err)
	}
	for _, row := range rows {
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO agency_hours (agency_id, weekday, frequency, start_time, end_time)
			VALUES (?, ?, ?, ?, ?)`,
			agencyID, row.WeekdayLabel, row.FrequencyText, row.StartTimeText, row.EndTimeText,
		); err != nil {
			return fmt.Errorf("inserting hours for agency %s: %w", agencyID, err)
		}
	}
	return nil
}

func (r *SQLiteHoursRepo) ListByAgency(ctx context.Context, agencyID string) ([]schedule.RawHoursRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT agency_id, weekday, frequency, start_time, end_time
		FROM agency_hours WHERE agency_id = ? ORDER BY id`, agencyID)
	if err != nil {
		return nil, fmt.Errorf("listing hours for agency %s: %w", agencyID, err)
	}
	defer rows.Close()

	var out []schedule.RawHoursRow
	for rows.Next() {
		var row schedule.RawHoursRow
		if err := rows.Scan(&row.AgencyID, &row.WeekdayLabel, &row.FrequencyText,
			&row.StartTimeText, &row.EndTimeText); err != nil {
			return nil, fmt.Errorf("scanning hours row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hours rows: %w", err)
	}
	return out, nil
}
