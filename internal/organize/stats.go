package organize

// Stats accumulates per-run counters. It is owned exclusively by the
// traversal loop for the run's lifetime and read-only afterwards.
type Stats struct {
	Moved   int
	Skipped int
	Errored int
	// Categories counts moved files per category name.
	Categories map[string]int
}

// NewStats returns zeroed counters for one run.
func NewStats() *Stats {
	return &Stats{Categories: make(map[string]int)}
}
