// Package logging wires log/slog with the console and JSON handlers used by
// the CLI, plus small attr helpers shared by every component.
package logging
