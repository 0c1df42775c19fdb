package note

import (
	"regexp"
	"strings"
)

var (
	// mentionRegex matches @handles.
	mentionRegex = regexp.MustCompile(`@([a-zA-Z0-9_]+)`)

	// hashNumberPunctRegex matches numeric hashtags glued to closing or separator punctuation.
	hashNumberPunctRegex = regexp.MustCompile(`#(\d+)([「」『』（）【】:：｜|]+)`)

	// hashNumberURLRegex matches numeric hashtags glued to a URL.
	hashNumberURLRegex = regexp.MustCompile(`#(\d+)http`)
)

// FormatText normalizes a tweet body for a markdown list item:
// continuation lines are indented under the list marker, mentions become
// wiki links, and numeric hashtags are separated from trailing punctuation
// and URLs so they stay valid tags.
//
// Indentation is not idempotent; apply FormatText once per raw body.
func FormatText(text string) string {
	text = strings.ReplaceAll(text, "\n", "\n  ")
	text = mentionRegex.ReplaceAllString(text, "[[@$1]]")
	text = hashNumberPunctRegex.ReplaceAllString(text, "#$1 $2")
	text = hashNumberURLRegex.ReplaceAllString(text, "#$1 http")
	return text
}
