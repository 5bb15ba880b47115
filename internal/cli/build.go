package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pebblecal/pkg/config"
	"github.com/matzehuels/pebblecal/pkg/pipeline"
)

// buildCommand creates the build command, which renders the full calendar.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		flags      calendarFlags
		formatsStr string
		output     string
		scale      float64
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render a full calendar",
		Long: `Render a full calendar: a cut line, an art page and a month page for each
month, and a closing cut line.

The default outputs are a multi-page PDF for printing and a text report with
the seed and the styled dates. PDF output needs rsvg-convert (librsvg).

Results are cached locally, so rebuilding a calendar with the same seed is
instant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := flags.options(cmd)
			if err != nil {
				return err
			}
			if f := parseFormats(formatsStr); f != nil {
				opts.Formats = f
			}
			if cmd.Flags().Changed("scale") {
				opts.Scale = scale
			}
			opts.Refresh = refresh
			return c.runBuild(cmd.Context(), opts, cfg, output, noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: pebblecal-<year>)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf, svg, png, json, txt (comma-separated, default: pdf,txt)")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG pixels per point")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even if cached")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// runBuild renders the calendar and writes every artifact.
func (c *CLI) runBuild(ctx context.Context, opts pipeline.Options, cfg *config.Config, output string, noCache bool) error {
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}

	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		output = fmt.Sprintf("%s-%d", appName, opts.Year)
	}
	base := basePath(output)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Building %d calendar...", opts.Year))
	spinner.Start()

	var result *pipeline.Result
	err = trackBuild(spinner, c.Logger, func() error {
		var err error
		result, err = runner.Execute(ctx, opts)
		return err
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Building %d failed", opts.Year))
		return err
	}
	spinner.Stop()

	prog := newProgress(c.Logger)
	paths, err := writeArtifacts(base, opts.Formats, result.Artifacts)
	if err != nil {
		return err
	}
	prog.done("wrote artifacts", "files", len(paths), "base", base)

	doc := result.Document
	printSuccess("Calendar %d built", doc.Year)
	printKeyValue("Seed", fmt.Sprint(doc.Seed))
	printKeyValue("Build", doc.BuildID.String())
	for _, p := range paths {
		printFile(p)
	}
	printStats(result, opts.Formats)
	printNewline()
	printNextStep("Preview a month's artwork", fmt.Sprintf("%s preview --year %d --seed %d --stage 12", appName, doc.Year, doc.Seed))

	return nil
}
