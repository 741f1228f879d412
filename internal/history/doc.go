// Package history persists one summary row per organize run in SQLite.
// The engine's duplicate index is deliberately not stored here; only the
// final counters survive a run.
package history
