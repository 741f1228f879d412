package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganize()
	c.normalizeHistory()
	c.normalizeLogging()
	c.normalizeCategories()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganize() {
	c.Organize.DuplicateStrategy = strings.ToLower(strings.TrimSpace(c.Organize.DuplicateStrategy))
	if c.Organize.DuplicateStrategy == "" {
		c.Organize.DuplicateStrategy = defaultDuplicateStrategy
	}
	if len(c.Organize.Exclude) > 0 {
		patterns := make([]string, 0, len(c.Organize.Exclude))
		seen := make(map[string]struct{}, len(c.Organize.Exclude))
		for _, pattern := range c.Organize.Exclude {
			trimmed := strings.TrimSpace(pattern)
			if trimmed == "" {
				continue
			}
			if _, ok := seen[trimmed]; ok {
				continue
			}
			seen[trimmed] = struct{}{}
			patterns = append(patterns, trimmed)
		}
		c.Organize.Exclude = patterns
	}
}

func (c *Config) normalizeHistory() {
	if c.History.Limit <= 0 {
		c.History.Limit = defaultHistoryLimit
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeCategories lowercases extensions, guarantees leading dots, and
// appends the catch-all bucket when the declared table lacks one.
func (c *Config) normalizeCategories() {
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories()
		return
	}

	hasCatchAll := false
	for i := range c.Categories {
		cat := &c.Categories[i]
		cat.Name = strings.TrimSpace(cat.Name)
		exts := make([]string, 0, len(cat.Extensions))
		for _, ext := range cat.Extensions {
			normalized := strings.ToLower(strings.TrimSpace(ext))
			if normalized == "" {
				continue
			}
			if !strings.HasPrefix(normalized, ".") {
				normalized = "." + normalized
			}
			exts = append(exts, normalized)
		}
		cat.Extensions = exts
		if len(cat.Extensions) == 0 {
			hasCatchAll = true
		}
	}
	if !hasCatchAll {
		c.Categories = append(c.Categories, Category{Name: FallbackCategory})
	}
}
