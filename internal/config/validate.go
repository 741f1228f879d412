package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var validStrategies = map[string]struct{}{
	"rename":  {},
	"skip":    {},
	"replace": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if _, ok := validStrategies[c.Organize.DuplicateStrategy]; !ok {
		return fmt.Errorf("organize.duplicate_strategy must be one of rename, skip, replace (got %q)", c.Organize.DuplicateStrategy)
	}
	for _, pattern := range c.Organize.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("organize.exclude: invalid glob pattern %q", pattern)
		}
	}
	return nil
}

func (c *Config) validateCategories() error {
	if len(c.Categories) == 0 {
		return errors.New("categories must declare at least one entry")
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return errors.New("categories: name must not be empty")
		}
		if strings.ContainsAny(cat.Name, `/\`) {
			return fmt.Errorf("categories: name %q must not contain path separators", cat.Name)
		}
		if _, dup := seen[cat.Name]; dup {
			return fmt.Errorf("categories: duplicate name %q", cat.Name)
		}
		seen[cat.Name] = struct{}{}
	}
	return nil
}
