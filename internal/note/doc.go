// Package note builds and renders monthly tweet notes.
//
// A note is rendered from an Input, which is derived from all posts of one
// calendar month:
//
//	in, err := note.NewInput(posts)
//	tmpl, err := note.LoadTemplate("")   // built-in template
//	err = tmpl.Render(w, in)
//
// # Input
//
// The note ID, creation time, year and month come from the month's earliest
// post. Tweets are formatted with FormatText and sorted by their display
// timestamp (YYYY-MM-DD HH:MM:SS).
//
// # Templates
//
// Templates use text/template syntax with the Input as dot. Besides the
// Input fields they can call:
//
//	{{ frontmatter . }}  // YAML header body: id, created, year, month, tags
//	{{ pad2 .Hour }}     // zero-padded two-digit number
//
// The built-in template (templates/monthly_tweets.md) is embedded in the
// binary. A custom template is loaded from a file path; a missing file or a
// parse error is reported by LoadTemplate before any note is written.
package note
