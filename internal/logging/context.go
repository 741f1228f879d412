package logging

import (
	"context"
	"log/slog"

	"tidy/internal/services"
)

// WithContext decorates the logger with correlation attributes found on the
// context. A nil logger yields a no-op logger so call sites stay unguarded.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	if ctx == nil {
		return logger
	}
	if runID, ok := services.RunIDFromContext(ctx); ok {
		logger = logger.With(String(FieldRunID, runID))
	}
	return logger
}
