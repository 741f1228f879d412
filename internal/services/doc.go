// Package services defines the error taxonomy shared across the organize
// pipeline and the context keys used for run correlation.
//
// Errors are tagged with sentinel markers via Wrap so callers can decide
// between aborting the run (configuration errors) and counting a per-file
// failure while traversal continues.
package services
