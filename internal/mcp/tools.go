package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/gorewood/tweetnotes/internal/archive"
	"github.com/gorewood/tweetnotes/internal/config"
	"github.com/gorewood/tweetnotes/internal/convert"
	"github.com/gorewood/tweetnotes/internal/note"
)

// --- List months tool ---

// ListMonthsInput is the input for the list_months tool.
type ListMonthsInput struct {
	ArchivePath string `json:"archive_path"       jsonschema:"path to the tweets.js archive file"`
	Start       string `json:"start,omitempty"    jsonschema:"first month to include (YYYY-MM)"`
	End         string `json:"end,omitempty"      jsonschema:"last month to include (YYYY-MM)"`
	Timezone    string `json:"timezone,omitempty" jsonschema:"IANA time zone for month boundaries (default: system zone)"`
}

// ListMonthsOutput is the output for the list_months tool.
type ListMonthsOutput struct {
	Posts  int                    `json:"posts"  jsonschema:"number of tweets in the selected range"`
	Months []convert.MonthSummary `json:"months" jsonschema:"per-month totals in ascending order"`
}

func handleListMonths(log logrus.FieldLogger) mcp.ToolHandlerFor[ListMonthsInput, ListMonthsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListMonthsInput) (*mcp.CallToolResult, ListMonthsOutput, error) {
		if input.ArchivePath == "" {
			return nil, ListMonthsOutput{}, errors.New("archive_path is required")
		}

		rng, err := archive.ParseMonthRange(input.Start, input.End)
		if err != nil {
			return nil, ListMonthsOutput{}, err
		}

		posts, err := loadPosts(input.ArchivePath, rng, input.Timezone, log)
		if err != nil {
			return nil, ListMonthsOutput{}, err
		}

		return nil, ListMonthsOutput{
			Posts:  len(posts),
			Months: convert.Summarize(posts),
		}, nil
	}
}

// --- Render month tool ---

// RenderMonthInput is the input for the render_month tool.
type RenderMonthInput struct {
	ArchivePath  string `json:"archive_path"            jsonschema:"path to the tweets.js archive file"`
	Month        string `json:"month"                   jsonschema:"month to render (YYYY-MM)"`
	TemplatePath string `json:"template_path,omitempty" jsonschema:"custom note template file (default: built-in template)"`
	Timezone     string `json:"timezone,omitempty"      jsonschema:"IANA time zone for month boundaries (default: system zone)"`
}

// RenderMonthOutput is the output for the render_month tool.
type RenderMonthOutput struct {
	Month    string `json:"month"    jsonschema:"rendered month (YYYY-MM)"`
	Template string `json:"template" jsonschema:"name of the template used"`
	Content  string `json:"content"  jsonschema:"rendered markdown note"`
}

func handleRenderMonth(log logrus.FieldLogger) mcp.ToolHandlerFor[RenderMonthInput, RenderMonthOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderMonthInput) (*mcp.CallToolResult, RenderMonthOutput, error) {
		if input.ArchivePath == "" {
			return nil, RenderMonthOutput{}, errors.New("archive_path is required")
		}
		if input.Month == "" {
			return nil, RenderMonthOutput{}, errors.New("month is required")
		}

		month, err := archive.ParseMonth(input.Month)
		if err != nil {
			return nil, RenderMonthOutput{}, err
		}

		tmpl, err := note.LoadTemplate(input.TemplatePath)
		if err != nil {
			return nil, RenderMonthOutput{}, fmt.Errorf("loading template: %w", err)
		}

		posts, err := loadPosts(input.ArchivePath, archive.MonthRange{}, input.Timezone, log)
		if err != nil {
			return nil, RenderMonthOutput{}, err
		}

		content, err := convert.RenderMonth(posts, month, tmpl)
		if err != nil {
			return nil, RenderMonthOutput{}, err
		}

		return nil, RenderMonthOutput{
			Month:    month.String(),
			Template: tmpl.Name,
			Content:  content,
		}, nil
	}
}

// loadPosts resolves the time zone and loads the filtered archive.
func loadPosts(path string, rng archive.MonthRange, timezone string, log logrus.FieldLogger) ([]archive.Post, error) {
	loc, err := config.Location(timezone)
	if err != nil {
		return nil, err
	}
	return convert.LoadPosts(path, rng, loc, log)
}
