package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger for s. Timestamps are off so that
// output stays stable between runs.
func NewLogger(w io.Writer, s Settings) *log.Logger {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          AppName,
		Level:           level,
		ReportTimestamp: false,
	})
}
