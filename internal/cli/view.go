package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pebblecal/pkg/calendar"
	"github.com/matzehuels/pebblecal/pkg/document"
	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/pipeline"
	"github.com/matzehuels/pebblecal/pkg/surface"
)

// Grid styles
var (
	gridHeaderStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	gridDayStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	gridOtherStyle   = lipgloss.NewStyle().Foreground(colorDim)
	gridWeekendStyle = lipgloss.NewStyle().Foreground(colorYellow)
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// viewCommand creates the view command, which prints month grids to the
// terminal for checking week layout and holiday styling before printing.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		flags calendarFlags
		month int
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print calendar months in the terminal",
		Long: `Print calendar months in the terminal with days styled like the print:
bold and italic holidays, highlighted weekends and muted days of the
neighbouring months. Without --month all twelve months are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 0 || month > 12 {
				return errors.New(errors.ErrCodeInvalidInput, "month %d out of range 1..12", month)
			}
			opts, _, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return c.runView(cmd.Context(), os.Stdout, opts, month)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&month, "month", "m", 0, "print a single month (1-12)")
	return cmd
}

func (c *CLI) runView(ctx context.Context, w io.Writer, opts pipeline.Options, month int) error {
	opts.Logger = c.Logger
	runner := pipeline.NewRunner(nil, newKeyer(), c.Logger)
	defer runner.Close()

	doc, _, err := runner.Build(ctx, opts)
	if err != nil {
		return err
	}

	for i := range doc.Calendar.Months {
		if month != 0 && i+1 != month {
			continue
		}
		fmt.Fprint(w, renderMonth(doc, i))
	}
	return nil
}

// renderMonth formats month i (0-based) with its title, grid and the names
// of its styled dates.
func renderMonth(doc *document.Document, i int) string {
	month := doc.Calendar.Months[i]
	var b strings.Builder

	b.WriteString(StyleTitle.Render(doc.Title(month)))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("stage %d · seed %d", i+1, doc.Seed)))
	b.WriteString("\n")
	b.WriteString(monthTable(month).Render())
	b.WriteString("\n")

	for _, line := range holidayLines(doc, month) {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// monthTable renders a month grid with day numbers styled like the print.
func monthTable(month *calendar.Month) *table.Table {
	headers := make([]string, 7)
	for i, d := range month.Weeks[0] {
		headers[i] = d.Date.Weekday().String()[:2]
	}

	rows := make([][]string, len(month.Weeks))
	for r, week := range month.Weeks {
		rows[r] = make([]string, 7)
		for col, d := range week {
			rows[r][col] = fmt.Sprintf("%2d", d.Date.Day)
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return gridHeaderStyle.Padding(0, 1)
			}
			return dayStyle(month.Weeks[row][col]).Padding(0, 1)
		})
}

// dayStyle mirrors the print: other-month days are muted, weekends get a
// heavier look and holiday sets switch the face.
func dayStyle(d calendar.Day) lipgloss.Style {
	if !d.InMonth {
		return gridOtherStyle
	}
	s := gridDayStyle
	if d.Date.Weekend() {
		s = gridWeekendStyle
	}
	switch d.Style {
	case surface.Bold:
		s = s.Bold(true)
	case surface.Italic:
		s = s.Italic(true)
	case surface.BoldItalic:
		s = s.Bold(true).Italic(true)
	}
	return s
}

// holidayLines lists the month's styled dates with their names.
func holidayLines(doc *document.Document, month *calendar.Month) []string {
	var lines []string
	for _, d := range month.Days() {
		if !d.InMonth {
			continue
		}
		var names []string
		if name, ok := doc.Bold[d.Date]; ok {
			names = append(names, lipgloss.NewStyle().Bold(true).Render(name))
		}
		if name, ok := doc.Italic[d.Date]; ok {
			names = append(names, lipgloss.NewStyle().Italic(true).Render(name))
		}
		if len(names) > 0 {
			lines = append(lines, fmt.Sprintf("%s %s", StyleNumber.Render(fmt.Sprintf("%2d", d.Date.Day)), strings.Join(names, listDimStyle.Render(" / "))))
		}
	}
	return lines
}
