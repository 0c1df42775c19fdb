package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/tweetnotes/internal/archive"
	"github.com/gorewood/tweetnotes/internal/convert"
	"github.com/gorewood/tweetnotes/internal/output"
)

// statsResult is the JSON shape of the stats command.
type statsResult struct {
	Posts  int                    `json:"posts"`
	Months []convert.MonthSummary `json:"months"`
}

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	var fileFlag, startFlag, endFlag, timezoneFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-month tweet counts without writing notes",
		Long: `Show per-month totals for a Twitter/X archive.

Lists every month in the selected range with its tweet, retweet and reply
counts, the first and last tweet times, and the note file convert would write.

Examples:
  tweetnotes stats -f data/tweets.js
  tweetnotes stats -f data/tweets.js -s 2023-01 --timezone Europe/Berlin
  tweetnotes stats -f data/tweets.js --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, fileFlag, startFlag, endFlag, timezoneFlag)
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Path to tweets.js from the archive export")
	cmd.Flags().StringVarP(&startFlag, "start", "s", "", "First month to include (YYYY-MM)")
	cmd.Flags().StringVarP(&endFlag, "end", "e", "", "Last month to include (YYYY-MM)")
	cmd.Flags().StringVar(&timezoneFlag, "timezone", "", "IANA time zone for month boundaries (default: system zone)")

	return cmd
}

// runStats executes the stats command.
func runStats(cmd *cobra.Command, fileFlag, startFlag, endFlag, timezoneFlag string) error {
	printer := newPrinter(cmd)

	if fileFlag == "" {
		err := output.NewUserError("--file is required")
		printer.Error(err)
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	rng, err := archive.ParseMonthRange(startFlag, endFlag)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	loc, err := resolveLocation(timezoneFlag, settings)
	if err != nil {
		printer.Error(err)
		return err
	}

	posts, err := convert.LoadPosts(fileFlag, rng, loc, newLogger(cmd, settings))
	if err != nil {
		printer.Error(err)
		return err
	}

	result := statsResult{Posts: len(posts), Months: convert.Summarize(posts)}
	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanStats(printer, result)
	return nil
}

// printHumanStats renders the month table and totals.
func printHumanStats(printer *output.Printer, result statsResult) {
	if len(result.Months) == 0 {
		printer.Println("No tweets in the selected range")
		return
	}

	var retweets, replies int
	rows := make([][]string, 0, len(result.Months))
	for _, month := range result.Months {
		retweets += month.Retweets
		replies += month.Replies
		rows = append(rows, []string{
			month.Month,
			strconv.Itoa(month.Tweets),
			strconv.Itoa(month.Retweets),
			strconv.Itoa(month.Replies),
			month.First,
			month.Last,
			month.File,
		})
	}

	printer.Table([]string{"Month", "Tweets", "Retweets", "Replies", "First", "Last", "File"}, rows)

	printer.Section("Totals")
	printer.KeyValue("Months", strconv.Itoa(len(result.Months)))
	printer.KeyValue("Tweets", strconv.Itoa(result.Posts))
	printer.KeyValue("Retweets", strconv.Itoa(retweets))
	printer.KeyValue("Replies", strconv.Itoa(replies))
}
