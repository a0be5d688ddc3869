package logwatch

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger builds the operational logger. It writes to stderr so it never
// mixes with matched-line output on stdout.
func SetupLogger(cfg LoggerConfig) *slog.Logger {
	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}

	level := log.InfoLevel
	switch cfg.Level {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "logwatch",
		Formatter:       formatter,
		Level:           level,
	})
	return slog.New(handler)
}
