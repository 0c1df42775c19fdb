package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Color modes accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidateColorMode returns a user error for anything but auto, always,
// never or the empty string.
func ValidateColorMode(colorMode string) error {
	switch colorMode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return NewUserError(fmt.Sprintf("invalid --color %q; use auto, always or never", colorMode))
	}
}

// ResolveColorMode determines the effective isTTY value from the color mode
// and actual TTY detection:
//   - "never":  colors off
//   - "always": colors on
//   - anything else: follow isTTY
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal, including Cygwin/MSYS ptys.
// Writers that are not an *os.File are never terminals.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
