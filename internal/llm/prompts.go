package llm

import (
	"fmt"
	"strings"

	"github.com/cafb-tech/alacarte/internal/contract"
	"github.com/cafb-tech/alacarte/internal/domain"
)

const recommendationSystemPrompt = `You are a food-assistance navigator helping a neighbor find
free groceries. You are given a list of nearby food distribution sites with
their availability for the neighbor's requested pickup time. Recommend the
best options in warm, plain language. Mention distances, open hours, and any
appointment or documentation requirements. Never invent sites or hours that
are not in the list. Keep the answer under 200 words.`

// BuildRecommendationPrompt assembles the user prompt for the
// recommendation call from the match results and the neighbor's
// preferences.
func BuildRecommendationPrompt(req contract.FindRequest, resp *contract.MatchResponse) (string, string) {
	var b strings.Builder

	fmt.Fprintf(&b, "The neighbor wants to pick up food on %s during the %s.\n",
		resp.Date.Format("Monday, January 2"), resp.Period)
	if len(req.DietaryNotes) > 0 {
		fmt.Fprintf(&b, "Dietary notes: %s.\n", strings.Join(req.DietaryNotes, ", "))
	}
	if req.Language != "" {
		fmt.Fprintf(&b, "Answer in %s.\n", req.Language)
	}

	b.WriteString("\nNearby sites:\n")
	for _, m := range resp.Matches {
		b.WriteString(describeMatch(m))
	}

	return recommendationSystemPrompt, b.String()
}

func describeMatch(m contract.AgencyMatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- %s (%.1f miles, %s)", m.Agency.Name, m.Agency.DistanceMiles, m.Agency.Address)

	switch m.Result.State {
	case domain.StateOpenToday:
		if m.Result.EffectiveWindow != nil {
			fmt.Fprintf(&b, ": open during the requested time, %s", m.Result.EffectiveWindow)
		} else {
			b.WriteString(": open during the requested time")
		}
	case domain.StateClosedWithNext:
		if m.Result.NextOpenDate != nil {
			fmt.Fprintf(&b, ": closed that day, next open %s",
				m.Result.NextOpenDate.Format("Monday, January 2"))
		}
	default:
		b.WriteString(": no upcoming hours on record, suggest calling ahead")
	}

	if m.Agency.ByAppointmentOnly {
		b.WriteString("; appointment required")
	}
	if m.Agency.Requirements != "" {
		fmt.Fprintf(&b, "; requirements: %s", m.Agency.Requirements)
	}
	if m.Agency.Phone != "" {
		fmt.Fprintf(&b, "; phone %s", m.Agency.Phone)
	}
	b.WriteString("\n")
	return b.String()
}

// FallbackRecommendation produces deterministic text when generation is
// disabled or fails. It lists open sites first, then closed sites with
// their next open dates.
func FallbackRecommendation(resp *contract.MatchResponse) string {
	if len(resp.Matches) == 0 {
		return fmt.Sprintf("No food distribution sites were found for %s during the %s. "+
			"Try widening the search radius or choosing another day.",
			resp.Date.Format("Monday, January 2"), resp.Period)
	}

	var open, upcoming []string
	for _, m := range resp.Matches {
		switch m.Result.State {
		case domain.StateOpenToday:
			line := fmt.Sprintf("%s (%.1f mi)", m.Agency.Name, m.Agency.DistanceMiles)
			if m.Result.EffectiveWindow != nil {
				line += fmt.Sprintf(", %s", m.Result.EffectiveWindow)
			}
			open = append(open, line)
		case domain.StateClosedWithNext:
			if m.Result.NextOpenDate != nil {
				upcoming = append(upcoming, fmt.Sprintf("%s (next open %s)",
					m.Agency.Name, m.Result.NextOpenDate.Format("Jan 2")))
			}
		}
	}

	var b strings.Builder
	if len(open) > 0 {
		fmt.Fprintf(&b, "Open on %s during the %s: %s.",
			resp.Date.Format("Monday, January 2"), resp.Period, strings.Join(open, "; "))
	} else {
		fmt.Fprintf(&b, "No sites are open on %s during the %s.",
			resp.Date.Format("Monday, January 2"), resp.Period)
	}
	if len(upcoming) > 0 {
		fmt.Fprintf(&b, " Coming up: %s.", strings.Join(upcoming, "; "))
	}
	return b.String()
}
