package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"citizenshipbridge/config"
	"citizenshipbridge/internal/delivery/http/controllers"
	"citizenshipbridge/internal/domain"
	"citizenshipbridge/internal/services"
)

// staticClock pins "today" for the --today flag.
type staticClock struct{ now time.Time }

func (c staticClock) Now() time.Time { return c.now }

func newEligibilityCmd() *cobra.Command {
	var (
		today    string
		timezone string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "eligibility MM/DD/YYYY",
		Short: "Estimate when a permanent resident may file Form N-400",
		Long: `Prints the estimated eligibility date for the given green card issue date:
five years after the issue date, less the 90-day early filing window.`,
		Example: "  citizenshipbridge eligibility 01/15/2020\n  citizenshipbridge eligibility 01/15/2020 --today 2024-10-01 --json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("timezone") {
				timezone = config.Timezone()
			}
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("timezone: %w", err)
			}
			var clock domain.Clock = domain.RealClock{}
			if today != "" {
				t, err := time.ParseInLocation(time.DateOnly, today, loc)
				if err != nil {
					return fmt.Errorf("--today must be YYYY-MM-DD: %w", err)
				}
				clock = staticClock{now: t}
			}
			logger := config.NewLoggerTo(io.Discard, "", "")
			svc := services.NewEligibilityService(clock, loc, nil, logger)

			in, err := svc.ParseGreenCardDate(args[0])
			if err != nil {
				return errors.New(domain.MsgDateFormat)
			}
			view := controllers.NewEligibilityView(in, svc.Calculate(cmd.Context(), in))
			return printEligibility(cmd.OutOrStdout(), view, asJSON)
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "evaluate as of this date (YYYY-MM-DD) instead of the current day")
	cmd.Flags().StringVar(&timezone, "timezone", config.DefaultTimezone, "IANA time zone that defines the current day (default from TIMEZONE)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the estimate as JSON")
	return cmd
}

func printEligibility(w io.Writer, view controllers.EligibilityView, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	fmt.Fprintf(w, "Green card date:   %s\n", view.GreenCardDate)
	fmt.Fprintf(w, "Eligibility date:  %s (%s)\n", view.EligibilityDateLong, view.EligibilityDate)
	if view.CanApplyNow {
		fmt.Fprintln(w, "You might be eligible to apply now!")
		return nil
	}
	fmt.Fprintf(w, "Days remaining:    %d\n", view.DaysRemaining)
	return nil
}
