package testsupport

import (
	"path/filepath"
	"testing"

	"tidy/internal/config"
)

// NewConfig returns a default config rooted in a per-test temp directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}
