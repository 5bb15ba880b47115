package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pebblecal/pkg/art"
	"github.com/matzehuels/pebblecal/pkg/errors"
	"github.com/matzehuels/pebblecal/pkg/pipeline"
	"github.com/matzehuels/pebblecal/pkg/sink"
)

// previewCommand creates the preview command, which renders one art page.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags  calendarFlags
		stage  int
		format string
		output string
		scale  float64
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render one art page",
		Long: `Render the art page for one month without building the whole calendar.

Stage N shows the first N pebbles, as on month N's art page. Use it to try
seeds quickly: the art is the same as in a full build with the same seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := flags.options(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scale") {
				opts.Scale = scale
			}
			f, err := previewFormat(format, output)
			if err != nil {
				return err
			}
			return c.runPreview(cmd.Context(), opts, stage, f, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&stage, "stage", art.DefaultPebbles, "pebbles to show (1-12)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "png or svg (default: from --output, else png)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: pebblecal-<year>-stage-<n>.<format>)")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG pixels per point")

	return cmd
}

// previewFormat picks the preview format from the flag or the output file's
// extension.
func previewFormat(format, output string) (sink.Format, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(output), ".")
	}
	if format == "" {
		return sink.FormatPNG, nil
	}
	f, err := sink.ParseFormat(format)
	if err != nil {
		return "", err
	}
	if !f.Paged() {
		return "", errors.New(errors.ErrCodeInvalidFormat, "preview renders png or svg, not %s", f)
	}
	return f, nil
}

func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options, stage int, format sink.Format, output string) error {
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if stage < 1 || stage > art.DefaultPebbles {
		return errors.New(errors.ErrCodeInvalidInput, "stage %d out of range [1, %d]", stage, art.DefaultPebbles)
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	data, doc, err := runner.Preview(ctx, opts, stage, string(format))
	if err != nil {
		return err
	}

	if output == "" {
		output = fmt.Sprintf("%s-%d-stage-%02d.%s", appName, doc.Year, stage, format.Ext())
	}
	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Stage %d of seed %d", stage, doc.Seed)
	printFile(output)
	return nil
}
