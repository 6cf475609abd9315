package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cafb-tech/alacarte/internal/cli/formatter"
	"github.com/cafb-tech/alacarte/internal/contract"
	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/schedule"
)

// periodValue is a pflag.Value that rejects unknown period names at parse
// time instead of deep in the service.
type periodValue string

var _ pflag.Value = (*periodValue)(nil)

func (p *periodValue) String() string { return string(*p) }

func (p *periodValue) Type() string { return "period" }

func (p *periodValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidPeriods[s] {
		names := make([]string, 0, len(domain.ValidPeriods))
		for name := range domain.ValidPeriods {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown period %q: choose one of %s", s, strings.Join(names, ", "))
	}
	*p = periodValue(s)
	return nil
}

func newFindCmd(app *App) *cobra.Command {
	var (
		address  string
		radius   float64
		limit    int
		dateStr  string
		period   periodValue
		upcoming bool
		dietary  []string
		language string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find agencies near an address for a pickup date and time",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Open the preference form when required inputs are missing
			// and we are attached to a terminal.
			if address == "" || period == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--address and --period are required in non-interactive mode")
				}
				prefs := preferences{
					Address:  address,
					DateStr:  dateStr,
					Period:   string(period),
					Language: language,
				}
				if err := runPreferenceForm(&prefs); err != nil {
					return err
				}
				address = prefs.Address
				dateStr = prefs.DateStr
				period = periodValue(prefs.Period)
				language = prefs.Language
				dietary = append(dietary, prefs.DietaryNotes()...)
			}

			date, err := parsePickupDate(dateStr)
			if err != nil {
				return err
			}

			req := contract.NewFindRequest(address, date, domain.Period(period))
			req.RadiusMiles = radius
			req.Limit = limit
			req.IncludeUpcoming = upcoming
			req.DietaryNotes = dietary
			req.Language = language

			resp, err := app.Find.Find(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFindResponse(req, resp))
			return nil
		},
	}

	defaultRadius := app.DefaultRadiusMiles
	if defaultRadius <= 0 {
		defaultRadius = 10
	}
	defaultLimit := app.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = 25
	}

	cmd.Flags().StringVar(&address, "address", "", "Street address or neighborhood to search from")
	cmd.Flags().Float64Var(&radius, "radius", defaultRadius, "Search radius in miles")
	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "Maximum number of agencies to consider")
	cmd.Flags().StringVar(&dateStr, "date", "today", "Pickup date (YYYY-MM-DD, today, or tomorrow)")
	cmd.Flags().Var(&period, "period", "Time of day: morning, afternoon, evening, or night")
	cmd.Flags().BoolVar(&upcoming, "upcoming", true, "Include closed agencies with their next open date")
	cmd.Flags().StringSliceVar(&dietary, "dietary", nil, "Dietary notes passed to the recommendation")
	cmd.Flags().StringVar(&language, "language", "", "Language for the recommendation text")

	return cmd
}

// parsePickupDate accepts YYYY-MM-DD plus the today/tomorrow shorthands.
// The result is a UTC calendar date.
func parsePickupDate(s string) (time.Time, error) {
	today := schedule.DateOnly(time.Now().UTC())
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD, today, or tomorrow", s)
	}
	return t, nil
}
