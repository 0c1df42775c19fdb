package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/tweetnotes/internal/archive"
	"github.com/gorewood/tweetnotes/internal/config"
	"github.com/gorewood/tweetnotes/internal/convert"
	"github.com/gorewood/tweetnotes/internal/output"
)

// convertFlags holds the flag values of the convert command.
type convertFlags struct {
	file     string
	out      string
	start    string
	end      string
	template string
	timezone string
	dryRun   bool
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write one markdown note per month of tweets",
		Long: `Convert a Twitter/X archive into monthly markdown notes.

Reads tweets.js from an archive export, groups the tweets by calendar month
and writes tweets_YYYYMM.md into the output directory. A month that fails to
render is reported and skipped; the other months are still written.

Examples:
  tweetnotes convert -f data/tweets.js -o ~/vault/tweets
  tweetnotes convert -f data/tweets.js -o notes -s 2022-01 -e 2022-12
  tweetnotes convert -f data/tweets.js -o notes --timezone Asia/Tokyo
  tweetnotes convert -f data/tweets.js -o notes --dry-run --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Path to tweets.js from the archive export")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output directory for the notes (default: output_dir from config)")
	cmd.Flags().StringVarP(&flags.start, "start", "s", "", "First month to include (YYYY-MM)")
	cmd.Flags().StringVarP(&flags.end, "end", "e", "", "Last month to include (YYYY-MM)")
	cmd.Flags().StringVar(&flags.template, "template", "", "Custom note template file (default: built-in)")
	cmd.Flags().StringVar(&flags.timezone, "timezone", "", "IANA time zone for month boundaries (default: system zone)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "List the notes that would be written without writing them")

	return cmd
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, flags convertFlags) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	cfg, err := buildConvertConfig(flags, settings)
	if err != nil {
		printer.Error(err)
		return err
	}

	summary, err := convert.Run(cfg, newLogger(cmd, settings))
	if err != nil {
		printer.Error(err)
		return err
	}

	return printConvertSummary(printer, cfg.OutputDir, summary)
}

// buildConvertConfig validates flags and fills defaults from settings.
func buildConvertConfig(flags convertFlags, settings config.Settings) (convert.Config, error) {
	if flags.file == "" {
		return convert.Config{}, output.NewUserError("--file is required")
	}

	outDir := config.Pick(flags.out, settings.OutputDir)
	if outDir == "" {
		return convert.Config{}, output.NewUserError("--out is required (or set output_dir in the config file)")
	}

	rng, err := archive.ParseMonthRange(flags.start, flags.end)
	if err != nil {
		return convert.Config{}, output.NewUserErrorWithCause(err.Error(), err)
	}

	loc, err := resolveLocation(flags.timezone, settings)
	if err != nil {
		return convert.Config{}, err
	}

	return convert.Config{
		ArchivePath:  flags.file,
		OutputDir:    outDir,
		Range:        rng,
		TemplatePath: config.Pick(flags.template, settings.Template),
		Location:     loc,
		DryRun:       flags.dryRun,
	}, nil
}

// printConvertSummary reports the written and skipped notes.
func printConvertSummary(printer *output.Printer, outDir string, summary *convert.Summary) error {
	if printer.IsJSON() {
		return printer.WriteJSON(summary)
	}

	if summary.DryRun {
		printer.Print("Would write %d notes from %d tweets:\n", len(summary.Written), summary.Posts)
		printer.List(summary.Written)
		return nil
	}

	for _, skip := range summary.Skipped {
		printer.Warn("skipped %s at %s: %s", skip.Key.Label(), skip.Stage, skip.Reason())
	}

	return printer.Success(map[string]any{
		"message": formatWritten(summary, outDir),
	})
}

// formatWritten builds the human summary line.
func formatWritten(summary *convert.Summary, outDir string) string {
	if summary.Months == 0 {
		return "No tweets in the selected range; nothing written"
	}
	noun := "notes"
	if len(summary.Written) == 1 {
		noun = "note"
	}
	return fmt.Sprintf("Wrote %d %s (%d tweets) to %s", len(summary.Written), noun, summary.Posts, outDir)
}
