package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/tweetnotes/internal/config"
	"github.com/gorewood/tweetnotes/internal/note"
	"github.com/gorewood/tweetnotes/internal/output"
)

// newTemplateCmd creates the template command group.
func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect the note template",
		Long: `Inspect the template used to render monthly notes.

Templates use Go text/template syntax. The data available to a template is:
  .ID             note id derived from the earliest tweet (YYYYMMDDHHMMSSmmm)
  .FileCreatedAt  earliest tweet time (YYYY-MM-DD HH:MM:SS)
  .Year .Month    zero-padded year and month strings
  .Stats          TweetCount, RetweetCount, ReplyCount and ByHour[0..23]
  .Tweets         list of {CreatedAt, Text} in chronological order

Helpers: frontmatter (YAML front matter block body), pad2 (two-digit number).`,
	}
	cmd.AddCommand(newTemplateShowCmd())
	return cmd
}

// newTemplateShowCmd creates the template show subcommand.
func newTemplateShowCmd() *cobra.Command {
	var templateFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective note template",
		Long: `Print the template convert would use.

Without --template the config file template is shown, or the built-in one.
Copy the built-in template as a starting point for your own:

  tweetnotes template show > my_template.md
  tweetnotes convert -f data/tweets.js -o notes --template my_template.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplateShow(cmd, templateFlag)
		},
	}

	cmd.Flags().StringVar(&templateFlag, "template", "", "Template file to show (default: config or built-in)")
	return cmd
}

// runTemplateShow executes the template show command.
func runTemplateShow(cmd *cobra.Command, templateFlag string) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := note.LoadTemplate(config.Pick(templateFlag, settings.Template))
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("failed to load template: %v", err), err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"name":   tmpl.Name,
			"source": tmpl.Source,
			"text":   tmpl.Text(),
		})
	}

	printer.Print("%s", tmpl.Text())
	return nil
}
