package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ASCII logo for the application
const ASCIILogo = `
    ╔═══════════════════════════════════════════════════╗
    ║  ██╗ ██████╗  ██████╗ ███████╗██╗███╗   ██╗████████╗ ║
    ║  ██║██╔════╝ ██╔═══██╗██╔════╝██║████╗  ██║╚══██╔══╝ ║
    ║  ██║██║  ███╗██║   ██║███████╗██║██╔██╗ ██║   ██║    ║
    ║  ██║██║   ██║██║   ██║╚════██║██║██║╚██╗██║   ██║    ║
    ║  ██║╚██████╔╝╚██████╔╝███████║██║██║ ╚████║   ██║    ║
    ║  ╚═╝ ╚═════╝  ╚═════╝ ╚══════╝╚═╝╚═╝  ╚═══╝   ╚═╝    ║
    ║       INSTAGRAM PROFILE OSINT - PUBLIC DATA ONLY      ║
    ╚═══════════════════════════════════════════════════╝
`

var (
	out          io.Writer = os.Stdout
	quietMode    bool
	colorEnabled = detectColor()
)

// Color functions for terminal output
var (
	Cyan    = colorize("\033[36m%s\033[0m")
	Yellow  = colorize("\033[33m%s\033[0m")
	Red     = colorize("\033[31m%s\033[0m")
	Green   = colorize("\033[32m%s\033[0m")
	Magenta = colorize("\033[35m%s\033[0m")
	Dim     = colorize("\033[2m%s\033[0m")
)

// detectColor enables colors only for an interactive stdout without NO_COLOR
func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorize returns a function that wraps text with ANSI color codes
func colorize(colorString string) func(string) string {
	return func(text string) string {
		if !colorEnabled {
			return text
		}
		return fmt.Sprintf(colorString, text)
	}
}

// SetOutput redirects console output
func SetOutput(w io.Writer) {
	out = w
}

// Output returns the current console writer
func Output() io.Writer {
	return out
}

// SetQuietMode suppresses everything except errors
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// IsQuietMode reports whether quiet mode is on
func IsQuietMode() bool {
	return quietMode
}

// SetColorEnabled overrides terminal color detection
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether ANSI colors are written
func ColorEnabled() bool {
	return colorEnabled
}

// PrintLogo prints the ASCII logo with color
func PrintLogo() {
	if quietMode {
		return
	}
	fmt.Fprint(out, Cyan(ASCIILogo))
}

// PrintError prints an error message in red. Errors are shown in quiet mode.
func PrintError(msg string, args ...interface{}) {
	if len(args) > 0 {
		fmt.Fprintln(out, Red(msg+": "+fmt.Sprintf("%v", args[0])))
	} else {
		fmt.Fprintln(out, Red(msg))
	}
}

// PrintSuccess prints a success message in green
func PrintSuccess(msg string) {
	if quietMode {
		return
	}
	fmt.Fprintln(out, Green(msg))
}

// PrintInfo prints an info message in cyan
func PrintInfo(label string, value string) {
	if quietMode {
		return
	}
	fmt.Fprintf(out, "%s: %s\n", Cyan(label), Yellow(value))
}

// PrintWarning prints a warning message in yellow
func PrintWarning(msg string, args ...interface{}) {
	if quietMode {
		return
	}
	if len(args) > 0 {
		fmt.Fprintln(out, Yellow(msg+": "+fmt.Sprintf("%v", args[0])))
	} else {
		fmt.Fprintln(out, Yellow(msg))
	}
}

// PrintHighlight prints a highlighted message in magenta
func PrintHighlight(msg string) {
	if quietMode {
		return
	}
	fmt.Fprintln(out, Magenta(msg))
}
