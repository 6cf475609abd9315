package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

func TestFormatAgencyList(t *testing.T) {
	agencies := []*domain.Agency{
		{ID: "a1", Name: "Hope Market", Type: domain.AgencyMarket, Region: "DC", Address: "100 Main St"},
		{ID: "a2", Name: "Corner Pantry", Type: domain.AgencyShoppingPartner, Region: "MD"},
	}
	out := FormatAgencyList(agencies)
	assert.Contains(t, out, "Hope Market")
	assert.Contains(t, out, "shopping_partner")
	assert.Contains(t, out, "100 Main St")
}

func TestFormatAgencyList_Empty(t *testing.T) {
	out := FormatAgencyList(nil)
	assert.Contains(t, out, "No agencies")
}

func TestFormatAgencyDetail(t *testing.T) {
	anchor := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	agency := &domain.Agency{
		ID: "a1", Name: "Hope Market", Type: domain.AgencyMarket,
		Address: "100 Main St", Phone: "202-555-0142",
		Latitude: 38.9072, Longitude: -77.0369,
		ByAppointmentOnly: true,
		CulturesServed:    []string{"Latin American", "Ethiopian"},
		LastServiceDate:   &anchor,
	}
	hours := []schedule.RawHoursRow{
		{WeekdayLabel: "Wednesday", FrequencyText: "Every week", StartTimeText: "9:00 AM", EndTimeText: "1:00 PM"},
	}

	out := FormatAgencyDetail(agency, hours)
	assert.Contains(t, out, "Hope Market")
	assert.Contains(t, out, "202-555-0142")
	assert.Contains(t, out, "by appointment only")
	assert.Contains(t, out, "Latin American, Ethiopian")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "Every week")
}

func TestFormatAgencyDetail_NoHours(t *testing.T) {
	out := FormatAgencyDetail(&domain.Agency{ID: "a1", Name: "Bare"}, nil)
	assert.Contains(t, out, "No hours on record.")
}
