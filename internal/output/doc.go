// Package output provides terminal output handling for the tweetnotes CLI.
//
// Commands print either human-readable text or JSON (with --json), so the
// converter can be scripted as easily as it can be run by hand.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Wrote 12 notes"})
//	printer.Table([]string{"Month", "Tweets"}, rows)
//	printer.List(plannedPaths)
//	printer.Warn("skipped %s: %v", month, err)
//	printer.Error(err)
//
// In JSON mode Success and WriteJSON emit indented JSON, and errors are
// written as {"error": "message", "code": N}.
//
// # Styling
//
// Human output is styled with lipgloss. Styles are cleared when the writer is
// not a terminal, or when --color never is given (see ResolveColorMode).
// Integer columns of a Table are right-aligned.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad flags, bad month bounds, malformed records
//	output.ExitSystemError // 2: unreadable archive, template or output dir failure
//
// Commands return *ExitError values; main maps them to the process exit code
// with GetExitCode.
package output
