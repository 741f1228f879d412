package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"tidy/internal/config"
	"tidy/internal/testsupport"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("absent file reported as existing")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Organize.DuplicateStrategy != "rename" {
		t.Fatalf("default strategy = %q, want rename", cfg.Organize.DuplicateStrategy)
	}
	if len(cfg.Categories) == 0 {
		t.Fatal("expected default categories")
	}
	if cfg.Categories[len(cfg.Categories)-1].Name != config.FallbackCategory {
		t.Fatalf("expected trailing catch-all, got %v", cfg.Categories[len(cfg.Categories)-1].Name)
	}
}

func TestLoadCategoriesReplaceDefaults(t *testing.T) {
	path := writeConfig(t, `
[[categories]]
name = "Paperwork"
extensions = [".PDF", "txt"]
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("config file not detected")
	}
	if len(cfg.Categories) != 2 {
		t.Fatalf("categories = %+v, want declared entry plus auto catch-all", cfg.Categories)
	}
	if cfg.Categories[0].Name != "Paperwork" {
		t.Fatalf("first category = %q", cfg.Categories[0].Name)
	}
	// Extensions are lowercased and dotted during normalization.
	want := []string{".pdf", ".txt"}
	got := cfg.Categories[0].Extensions
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("extensions = %v, want %v", got, want)
	}
	if cfg.Categories[1].Name != config.FallbackCategory {
		t.Fatalf("expected auto-appended catch-all, got %q", cfg.Categories[1].Name)
	}
}

func TestLoadRejectsInvalidStrategy(t *testing.T) {
	path := writeConfig(t, `
[organize]
duplicate_strategy = "merge"
`)

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid strategy")
	}
}

func TestLoadRejectsInvalidExcludeGlob(t *testing.T) {
	path := writeConfig(t, `
[organize]
exclude = ["[unclosed"]
`)

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid glob")
	}
}

func TestLoadRejectsCategoryWithSeparator(t *testing.T) {
	path := writeConfig(t, `
[[categories]]
name = "Docs/Misc"
extensions = [".pdf"]
`)

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for category name with path separator")
	}
}

func TestLoadNormalizesStrategyCase(t *testing.T) {
	path := writeConfig(t, `
[organize]
duplicate_strategy = "SKIP"
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Organize.DuplicateStrategy != "skip" {
		t.Fatalf("strategy = %q, want skip", cfg.Organize.DuplicateStrategy)
	}
}

func TestEnsureDirectories(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.StateDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("missing directory %s: %v", dir, err)
		}
	}
	// Second call must be a no-op.
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories rerun: %v", err)
	}
}
