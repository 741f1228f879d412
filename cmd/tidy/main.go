package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tidy/internal/services"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "tidy:", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status: 0 on success,
// 2 for configuration faults the user must fix before rerunning, 1 for
// everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case services.IsFatal(err):
		return 2
	default:
		return 1
	}
}
