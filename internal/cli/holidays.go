package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/holidays"
	"github.com/matzehuels/pebblecal/pkg/pipeline"
)

// holidaysCommand creates the holidays command, which lists the dates a
// holiday source yields for a year.
func (c *CLI) holidaysCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays [code|file.toml]...",
		Short: "List holiday dates for a year",
		Long: `List the dates of one or more holiday sources for a year.

Without arguments, the built-in holiday sets are listed. A source is either a
built-in code or a TOML file:

  [[holiday]]
  date = 2025-06-14
  name = "Wedding anniversary"

  [[annual]]
  month = 12
  day = 24
  name = "Christmas Eve"`,
		ValidArgsFunction: completeHolidayCodes,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printInfo("Built-in holiday sets")
				for _, code := range holidays.Codes() {
					printDetail("%s", code)
				}
				return nil
			}
			if year == 0 {
				year = pipeline.DefaultYear(time.Now())
			}
			return runHolidays(cmd.Context(), year, args)
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "year to list (default: this year, or next year from October)")
	return cmd
}

func runHolidays(ctx context.Context, year int, refs []string) error {
	if err := errors.ValidateYear(year); err != nil {
		return err
	}
	p, err := holidays.Resolve(refs...)
	if err != nil {
		return err
	}
	set := p.Dates(year)
	loggerFromContext(ctx).Debug("resolved holidays", "sources", len(refs), "dates", len(set))
	printSuccess("%d dates in %d from %s", len(set), year, strings.Join(refs, ", "))
	for _, d := range set.Sorted() {
		printKeyValue(d.String(), fmt.Sprintf("%-9s %s", d.Weekday(), set[d]))
	}
	return nil
}
