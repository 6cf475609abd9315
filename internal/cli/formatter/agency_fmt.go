package formatter

import (
	"fmt"
	"strings"

	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

// FormatAgencyList renders the agency table for "agency list".
func FormatAgencyList(agencies []*domain.Agency) string {
	if len(agencies) == 0 {
		return Dim("No agencies in the database. Run import first.") + "\n"
	}

	headers := []string{"ID", "Name", "Type", "Region", "Address"}
	rows := make([][]string, 0, len(agencies))
	for _, a := range agencies {
		rows = append(rows, []string{a.ID, a.Name, string(a.Type), a.Region, a.Address})
	}
	return RenderTable(headers, rows)
}

// FormatAgencyDetail renders one agency with its stored hours rows.
func FormatAgencyDetail(a *domain.Agency, hours []schedule.RawHoursRow) string {
	var b strings.Builder

	b.WriteString(Header(a.Name))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s %s\n", Bold(label+":"), value)
		}
	}
	field("ID", a.ID)
	field("Type", string(a.Type))
	field("Address", a.Address)
	field("Region", a.Region)
	field("Phone", a.Phone)
	if a.Latitude != 0 || a.Longitude != 0 {
		field("Location", fmt.Sprintf("%.4f, %.4f", a.Latitude, a.Longitude))
	}
	if a.ByAppointmentOnly {
		field("Access", "by appointment only")
	}
	field("Requirements", a.Requirements)
	field("Food format", a.FoodFormat)
	field("Distribution", a.DistributionModels)
	field("Cultures served", strings.Join(a.CulturesServed, ", "))
	field("Wraparound services", strings.Join(a.WraparoundServices, ", "))
	if a.LastServiceDate != nil {
		field("Last service", a.LastServiceDate.Format("2006-01-02"))
	}

	b.WriteString("\n")
	b.WriteString(Header("Hours"))
	b.WriteString("\n\n")
	if len(hours) == 0 {
		b.WriteString(Dim("No hours on record.") + "\n")
		return b.String()
	}

	headers := []string{"Day", "Frequency", "Opens", "Closes"}
	rows := make([][]string, 0, len(hours))
	for _, h := range hours {
		rows = append(rows, []string{h.WeekdayLabel, h.FrequencyText, h.StartTimeText, h.EndTimeText})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
