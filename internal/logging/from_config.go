package logging

import (
	"log/slog"

	"tidy/internal/config"
)

// NewFromConfig creates a logger using application config defaults. Output
// goes to stderr plus the configured log file so stdout stays reserved for
// command output.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", OutputPaths: []string{"stderr"}})
	}
	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stderr", cfg.LogFilePath()},
	})
}
