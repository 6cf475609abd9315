package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/cafb-tech/alacarte/internal/contract"
	"github.com/cafb-tech/alacarte/internal/domain"
)

// FormatFindResponse renders the full find result: a match table, the
// recommendation box, and a note about any data-quality warnings.
func FormatFindResponse(req contract.FindRequest, resp *contract.FindResponse) string {
	var b strings.Builder

	title := fmt.Sprintf("Food near %s on %s (%s)",
		req.Address, req.Date.Format("Mon, Jan 2"), req.Period)
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	if len(resp.Matches) == 0 {
		b.WriteString(Dim("No agencies found in range.") + "\n")
	} else {
		b.WriteString(FormatMatchTable(req.Date, resp.Matches))
	}

	if resp.Recommendation != "" {
		b.WriteString("\n")
		b.WriteString(RenderBox("Recommendation", resp.Recommendation))
		b.WriteString("\n")
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf(
			"%d hours rows could not be fully parsed; those hours were treated as unknown.",
			len(resp.Warnings))))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatMatchTable renders one row per agency with distance and availability.
func FormatMatchTable(requestDate time.Time, matches []contract.AgencyMatch) string {
	headers := []string{"", "Agency", "Distance", "Availability", "Notes"}
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			StateIndicator(m.Result.State),
			m.Agency.Name,
			MilesLabel(m.Agency.DistanceMiles),
			availabilityLabel(requestDate, m.Result),
			agencyNotes(m.Agency),
		})
	}
	return RenderTable(headers, rows)
}

func availabilityLabel(requestDate time.Time, r domain.ResolutionResult) string {
	switch r.State {
	case domain.StateOpenToday:
		if r.EffectiveWindow != nil {
			return fmt.Sprintf("open %s", r.EffectiveWindow)
		}
		return "open"
	case domain.StateClosedWithNext:
		if r.NextOpenDate != nil {
			return fmt.Sprintf("next: %s (%s)",
				r.NextOpenDate.Format("Mon, Jan 2"),
				RelativeDateFrom(*r.NextOpenDate, requestDate))
		}
	}
	return "call to confirm"
}

func agencyNotes(a domain.Agency) string {
	var notes []string
	if a.ByAppointmentOnly {
		notes = append(notes, "appointment")
	}
	if a.Requirements != "" {
		notes = append(notes, a.Requirements)
	}
	return strings.Join(notes, "; ")
}
