package category

import (
	"errors"
	"fmt"
	"strings"

	"tidy/internal/config"
)

// Table is the immutable classification table: an ordered list of categories
// plus a catch-all for extensions no category claims. Build one at startup
// and share it for the whole run.
type Table struct {
	ordered  []config.Category
	byExt    map[string]string
	names    map[string]struct{}
	fallback string
}

// NewTable builds a Table from the configured categories. The first declared
// category claiming an extension wins; the first category with an empty
// extension set becomes the catch-all.
func NewTable(categories []config.Category) (*Table, error) {
	if len(categories) == 0 {
		return nil, errors.New("category table requires at least one category")
	}

	t := &Table{
		byExt: make(map[string]string),
		names: make(map[string]struct{}, len(categories)),
	}
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, errors.New("category name must not be empty")
		}
		if _, dup := t.names[cat.Name]; dup {
			return nil, fmt.Errorf("duplicate category name %q", cat.Name)
		}
		t.names[cat.Name] = struct{}{}
		t.ordered = append(t.ordered, cat)
		if len(cat.Extensions) == 0 && t.fallback == "" {
			t.fallback = cat.Name
		}
		for _, ext := range cat.Extensions {
			key := strings.ToLower(ext)
			if _, claimed := t.byExt[key]; !claimed {
				t.byExt[key] = cat.Name
			}
		}
	}
	if t.fallback == "" {
		return nil, errors.New("category table requires a catch-all category with no extensions")
	}
	return t, nil
}

// Classify maps a file extension to a category name. Lookup is
// case-insensitive; unknown and empty extensions map to the catch-all.
func (t *Table) Classify(ext string) string {
	if name, ok := t.byExt[strings.ToLower(ext)]; ok {
		return name
	}
	return t.fallback
}

// Names returns the category names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.ordered))
	for _, cat := range t.ordered {
		names = append(names, cat.Name)
	}
	return names
}

// Fallback returns the catch-all category name.
func (t *Table) Fallback() string {
	return t.fallback
}

// IsCategory reports whether the given path segment matches a declared
// category name. Traversal uses this to leave already-organized files alone.
func (t *Table) IsCategory(segment string) bool {
	_, ok := t.names[segment]
	return ok
}

// Categories returns the table entries in declaration order.
func (t *Table) Categories() []config.Category {
	out := make([]config.Category, len(t.ordered))
	copy(out, t.ordered)
	return out
}
