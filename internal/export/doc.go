// Package export writes rendered monthly notes to disk.
//
// Each calendar month of tweets becomes one markdown file in the output
// directory, named after the month key:
//
//	tweets_202303.md
//	tweets_202304.md
//
// WriteNotes processes months in ascending order. Failures are per month:
// a month whose input cannot be built, whose template fails to render, or
// whose file cannot be written is logged as a warning and reported in
// Result.Skipped, and the next month is processed as usual.
//
//	result := export.WriteNotes(groups, "/path/to/vault", tmpl, log)
//	for _, skip := range result.Skipped {
//		fmt.Println(skip.Key, skip.Stage, skip.Reason())
//	}
//
// Notes are rendered into memory first, so a failed render never leaves a
// truncated file behind.
package export
