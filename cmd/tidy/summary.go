package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"

	"tidy/internal/organize"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

// renderSummary prints the run counters and the per-category breakdown.
// Category rows follow table declaration order, not map order.
func renderSummary(w io.Writer, stats *organize.Stats, categoryOrder []string, elapsed time.Duration, preview bool) {
	title := "Summary"
	if preview {
		title = "Summary (preview: nothing was moved)"
	}
	if shouldColorize(w) {
		title = ansiBlue + title + ansiReset
	}
	fmt.Fprintln(w, title)

	rows := [][]string{
		{"Moved", strconv.Itoa(stats.Moved)},
		{"Skipped", strconv.Itoa(stats.Skipped)},
		{"Errored", strconv.Itoa(stats.Errored)},
	}
	fmt.Fprintln(w, renderTable([]string{"Result", "Files"}, rows, 1))

	var categoryRows [][]string
	for _, name := range categoryOrder {
		if count, ok := stats.Categories[name]; ok && count > 0 {
			categoryRows = append(categoryRows, []string{name, strconv.Itoa(count)})
		}
	}
	if len(categoryRows) > 0 {
		fmt.Fprintln(w, renderTable([]string{"Category", "Files"}, categoryRows, 1))
	}

	fmt.Fprintf(w, "Elapsed: %s\n", elapsed.Round(10*time.Millisecond))
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
