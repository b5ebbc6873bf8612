// Package output holds the terminal primitives shared by every report:
// colors, labeled lines, tables, display caps and unit conversion.
package output

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()

	heading   = color.New(color.FgCyan, color.Bold).SprintFunc()
	success   = color.New(color.FgGreen, color.Bold).SprintFunc()
	failure   = color.New(color.FgRed, color.Bold).SprintFunc()
	headerFmt = color.New(color.FgCyan, color.Underline).SprintfFunc()
)

// ConfigureColors disables ANSI colors when forced off or when stdout is
// not a terminal.
func ConfigureColors(noColor bool) {
	if noColor || !IsTerminal() {
		DisableColors()
	}
}

// DisableColors turns off color output.
func DisableColors() {
	color.NoColor = true
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
