package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RowError describes a validation failure on a single export row. Row
// errors are collected and reported; they never abort the batch.
type RowError struct {
	Line   int
	Field  string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Line, e.Field, e.Reason)
}

var agencyTypes = map[string]bool{
	"market":           true,
	"shopping_partner": true,
}

// ValidateRecord checks one record's fields. Hours text (weekday,
// frequency, times) is deliberately not validated here: malformed hours
// become parse warnings at query time, not import failures.
func ValidateRecord(rec Record) []RowError {
	var errs []RowError

	if rec.AgencyID == "" {
		errs = append(errs, RowError{rec.Line, "agency_id", "must not be empty"})
	}
	if rec.Name == "" {
		errs = append(errs, RowError{rec.Line, "name", "must not be empty"})
	}
	if rec.Type != "" && !agencyTypes[strings.ToLower(rec.Type)] {
		errs = append(errs, RowError{rec.Line, "type",
			fmt.Sprintf("unknown agency type %q", rec.Type)})
	}

	if err := validateCoord(rec.Latitude, -90, 90); err != nil {
		errs = append(errs, RowError{rec.Line, "latitude", err.Error()})
	}
	if err := validateCoord(rec.Longitude, -180, 180); err != nil {
		errs = append(errs, RowError{rec.Line, "longitude", err.Error()})
	}

	if rec.LastServiceDate != "" {
		if _, err := time.Parse("2006-01-02", rec.LastServiceDate); err != nil {
			errs = append(errs, RowError{rec.Line, "last_service_date",
				fmt.Sprintf("%q is not a YYYY-MM-DD date", rec.LastServiceDate)})
		}
	}

	if rec.ByAppointmentOnly != "" {
		if _, err := parseBool(rec.ByAppointmentOnly); err != nil {
			errs = append(errs, RowError{rec.Line, "by_appointment_only", err.Error()})
		}
	}

	return errs
}

func validateCoord(s string, min, max float64) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if v < min || v > max {
		return fmt.Errorf("%v out of range [%v, %v]", v, min, max)
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a yes/no value", s)
}
