// Package colors provides terminal color support for codenav output.
//
// Colors are disabled automatically when NO_COLOR is set, when TERM is
// dumb or when stdout is not a terminal. FORCE_COLOR turns them back on.
package colors

import (
	"os"
	"runtime"
	"strings"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"

	ColorGray = "\033[90m"

	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
)

var colorEnabled = shouldUseColor()

func shouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if runtime.GOOS == "windows" {
		wt := os.Getenv("WT_SESSION")
		vscode := os.Getenv("VSCODE_PID")
		return wt != "" || vscode != "" || strings.Contains(term, "color") || strings.Contains(term, "xterm")
	}

	if term == "dumb" || term == "" {
		return false
	}

	if fileInfo, err := os.Stdout.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return true
}

// SetColorEnabled allows manual control of color output
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsColorEnabled returns whether colors are currently enabled
func IsColorEnabled() bool {
	return colorEnabled
}

func colorize(text, color string) string {
	if !colorEnabled {
		return text
	}
	return color + text + ColorReset
}

// Red returns text in bright red
func Red(text string) string {
	return colorize(text, BrightRed)
}

// Green returns text in bright green
func Green(text string) string {
	return colorize(text, BrightGreen)
}

// Yellow returns text in bright yellow
func Yellow(text string) string {
	return colorize(text, BrightYellow)
}

// Cyan returns text in bright cyan
func Cyan(text string) string {
	return colorize(text, BrightCyan)
}

// Gray returns text in gray
func Gray(text string) string {
	return colorize(text, ColorGray)
}

// Bold returns text in bold
func Bold(text string) string {
	return colorize(text, ColorBold)
}

// Dim returns text dimmed
func Dim(text string) string {
	return colorize(text, ColorDim)
}

// languageColors gives each language tag a stable badge color.
var languageColors = map[string]string{
	"python":     BrightBlue,
	"javascript": BrightYellow,
	"java":       BrightRed,
	"cpp":        BrightMagenta,
}

// LanguageBadge renders a language label in brackets, colored by tag.
func LanguageBadge(tag, label string) string {
	color, ok := languageColors[tag]
	if !ok {
		color = ColorGray
	}
	return colorize("["+label+"]", color)
}

// Control renders a navigation button. Disabled controls are dimmed and
// wrapped in parentheses so the state survives without color.
func Control(label string, enabled bool) string {
	if !enabled {
		return Dim("(" + label + ")")
	}
	return Bold(Cyan("[" + label + "]"))
}

// CurrentMarker prefixes the version on display in listings.
func CurrentMarker() string {
	return Green("→ ")
}

// DetachedMarker tags versions no longer reachable by moving forward.
func DetachedMarker() string {
	return Yellow("detached")
}

// SectionHeader formats a section header
func SectionHeader(text string) string {
	return Bold(text)
}

// ErrorText formats an error message
func ErrorText(text string) string {
	return Red(text)
}

// SuccessText formats a success message
func SuccessText(text string) string {
	return Green(text)
}

// InfoText formats an informational message
func InfoText(text string) string {
	return Cyan(text)
}
