package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Record is one row of an agency hours-of-operation export. An agency with
// hours on several weekdays appears on several rows with its metadata
// repeated; metadata is taken from the first row seen for each agency.
type Record struct {
	Line int // 1-based CSV line number, for error reporting

	AgencyID           string
	Name               string
	Type               string
	Address            string
	Region             string
	Phone              string
	Latitude           string
	Longitude          string
	ByAppointmentOnly  string
	Requirements       string
	FoodFormat         string
	DistributionModels string
	CulturesServed     string
	WraparoundServices string
	LastServiceDate    string

	Weekday      string
	Frequency    string
	StartTime    string
	StartTimeAlt string
	EndTime      string
	EndTimeAlt   string
}

// Column headers accepted in the export, normalized to lower snake case.
var columnFields = map[string]func(*Record, string){
	"agency_id":           func(r *Record, v string) { r.AgencyID = v },
	"name":                func(r *Record, v string) { r.Name = v },
	"type":                func(r *Record, v string) { r.Type = v },
	"address":             func(r *Record, v string) { r.Address = v },
	"region":              func(r *Record, v string) { r.Region = v },
	"phone":               func(r *Record, v string) { r.Phone = v },
	"latitude":            func(r *Record, v string) { r.Latitude = v },
	"longitude":           func(r *Record, v string) { r.Longitude = v },
	"by_appointment_only": func(r *Record, v string) { r.ByAppointmentOnly = v },
	"requirements":        func(r *Record, v string) { r.Requirements = v },
	"food_format":         func(r *Record, v string) { r.FoodFormat = v },
	"distribution_models": func(r *Record, v string) { r.DistributionModels = v },
	"cultures_served":     func(r *Record, v string) { r.CulturesServed = v },
	"wraparound_services": func(r *Record, v string) { r.WraparoundServices = v },
	"last_service_date":   func(r *Record, v string) { r.LastServiceDate = v },
	"day_of_week":         func(r *Record, v string) { r.Weekday = v },
	"frequency":           func(r *Record, v string) { r.Frequency = v },
	"starting_time":       func(r *Record, v string) { r.StartTime = v },
	"starting_time_alt":   func(r *Record, v string) { r.StartTimeAlt = v },
	"ending_time":         func(r *Record, v string) { r.EndTime = v },
	"ending_time_alt":     func(r *Record, v string) { r.EndTimeAlt = v },
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// ReadRecords parses a CSV export into records. The first row must be a
// header; unknown columns are ignored so exports can carry extra fields.
func ReadRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty export: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	setters := make([]func(*Record, string), len(header))
	seenAgencyID := false
	for i, h := range header {
		name := normalizeHeader(h)
		setters[i] = columnFields[name]
		if name == "agency_id" {
			seenAgencyID = true
		}
	}
	if !seenAgencyID {
		return nil, fmt.Errorf("export missing required column agency_id")
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line+1, err)
		}
		line++

		rec := Record{Line: line}
		for i, v := range row {
			if i < len(setters) && setters[i] != nil {
				setters[i](&rec, strings.TrimSpace(v))
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
