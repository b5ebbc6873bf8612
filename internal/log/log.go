// Package log provides the diagnostic logger for solx.
//
// Reports go to stdout; everything written through this package goes to
// stderr so that piping a report never mixes in diagnostics.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the process-wide diagnostic logger.
var Logger = NewConsoleLogger(os.Stderr, "warn", false)

// Component loggers.
var (
	RPC    zerolog.Logger
	Config zerolog.Logger
)

func init() {
	initComponentLoggers()
}

// Init replaces the global logger. verbose switches the level to debug.
func Init(w io.Writer, verbose, noColor bool) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	Logger = NewConsoleLogger(w, level, noColor)
	initComponentLoggers()
}

// NewConsoleLogger creates a human-readable console logger.
func NewConsoleLogger(w io.Writer, level string, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}
	return zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func initComponentLoggers() {
	RPC = Logger.With().Str("component", "rpc").Logger()
	Config = Logger.With().Str("component", "config").Logger()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}
