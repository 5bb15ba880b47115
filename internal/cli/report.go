package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pebblecal/pkg/pipeline"
)

// reportCommand creates the report command, which prints a calendar's
// report without rendering it.
func (c *CLI) reportCommand() *cobra.Command {
	var (
		flags  calendarFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the seed, build ID and styled dates of a calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return c.runReport(cmd.Context(), opts, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runReport(ctx context.Context, opts pipeline.Options, output string) error {
	opts.Logger = c.Logger
	runner := pipeline.NewRunner(nil, newKeyer(), c.Logger)
	defer runner.Close()

	doc, _, err := runner.Build(ctx, opts)
	if err != nil {
		return err
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()
	return doc.WriteReport(out)
}
