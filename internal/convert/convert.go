// Package convert runs the archive-to-notes pipeline.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gorewood/tweetnotes/internal/archive"
	"github.com/gorewood/tweetnotes/internal/export"
	"github.com/gorewood/tweetnotes/internal/monthly"
	"github.com/gorewood/tweetnotes/internal/note"
	"github.com/gorewood/tweetnotes/internal/output"
)

// Config is the immutable input of one conversion run.
type Config struct {
	ArchivePath  string
	OutputDir    string
	Range        archive.MonthRange
	TemplatePath string
	Location     *time.Location
	DryRun       bool
}

// Summary reports what a conversion run did.
type Summary struct {
	Posts   int           `json:"posts"`
	Months  int           `json:"months"`
	DryRun  bool          `json:"dry_run,omitempty"`
	Written []string      `json:"written"`
	Skipped []export.Skip `json:"skipped,omitempty"`
}

// Run loads the archive, filters and groups it, and writes one note per month.
// Load, template and output directory failures abort the run; per-month
// failures are logged and listed in Summary.Skipped.
func Run(cfg Config, log logrus.FieldLogger) (*Summary, error) {
	posts, err := LoadPosts(cfg.ArchivePath, cfg.Range, cfg.Location, log)
	if err != nil {
		return nil, err
	}

	groups := monthly.GroupByMonth(posts)
	log.WithField("months", len(groups)).Infof("Grouped %d tweets", len(posts))

	tmpl, err := note.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("failed to load template: %v", err), err)
	}

	summary := &Summary{Posts: len(posts), Months: len(groups), DryRun: cfg.DryRun}

	if cfg.DryRun {
		summary.Written = export.Plan(groups, cfg.OutputDir)
		return summary, nil
	}

	if len(groups) == 0 {
		log.Warn("No tweets in the selected range; nothing to write")
		return summary, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("failed to create output directory: %v", err), err)
	}

	result := export.WriteNotes(groups, cfg.OutputDir, tmpl, log)
	summary.Written = result.Written
	summary.Skipped = result.Skipped
	return summary, nil
}

// LoadPosts reads the archive and applies the month range.
// Errors are returned as output.ExitError values.
func LoadPosts(path string, rng archive.MonthRange, loc *time.Location, log logrus.FieldLogger) ([]archive.Post, error) {
	if loc == nil {
		loc = time.Local
	}

	log.Infof("Loading tweets from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("failed to open the file %s: %v", path, err), err)
	}

	posts, err := archive.Parse(data, loc)
	if err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("failed to parse %s: %v", path, err), err)
	}

	if rng.From != nil {
		log.Infof("Filtering tweets by the start month: %s", rng.From)
	}
	if rng.To != nil {
		log.Infof("Filtering tweets by the end month: %s", rng.To)
	}
	return rng.Apply(posts), nil
}

// MonthSummary is the per-month overview used by the stats command and MCP tools.
type MonthSummary struct {
	Month    string `json:"month"`
	File     string `json:"file"`
	Tweets   int    `json:"tweets"`
	Retweets int    `json:"retweets"`
	Replies  int    `json:"replies"`
	First    string `json:"first"`
	Last     string `json:"last"`
}

// Summarize computes per-month totals in ascending month order.
func Summarize(posts []archive.Post) []MonthSummary {
	groups := monthly.GroupByMonth(posts)
	keys := monthly.SortedKeys(groups)

	summaries := make([]MonthSummary, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		stats := monthly.ComputeStats(group)
		first, last := span(group)
		summaries = append(summaries, MonthSummary{
			Month:    key.Label(),
			File:     export.FileName(key),
			Tweets:   stats.TweetCount,
			Retweets: stats.RetweetCount,
			Replies:  stats.ReplyCount,
			First:    first.Format(note.DisplayLayout),
			Last:     last.Format(note.DisplayLayout),
		})
	}
	return summaries
}

// span returns the earliest and latest creation times of a non-empty group.
func span(posts []archive.Post) (first, last time.Time) {
	first, last = posts[0].CreatedAt, posts[0].CreatedAt
	for _, post := range posts[1:] {
		if post.CreatedAt.Before(first) {
			first = post.CreatedAt
		}
		if post.CreatedAt.After(last) {
			last = post.CreatedAt
		}
	}
	return first, last
}

// ErrMonthNotFound is returned by RenderMonth when the month has no tweets.
var ErrMonthNotFound = errors.New("no tweets in month")

// RenderMonth renders the note for a single month to a string.
func RenderMonth(posts []archive.Post, month archive.Month, renderer note.Renderer) (string, error) {
	key := monthly.Key(month.Year*100 + int(month.Month))
	group := monthly.GroupByMonth(posts)[key]
	if len(group) == 0 {
		return "", fmt.Errorf("%w %s", ErrMonthNotFound, month)
	}

	in, err := note.NewInput(group)
	if err != nil {
		return "", fmt.Errorf("building note input for %s: %w", month, err)
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
