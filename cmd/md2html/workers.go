package main

import (
	"fmt"
	"runtime"
)

// MaxWorkers caps --workers. Conversion is CPU-bound, so more workers than
// cores only adds scheduling overhead.
const MaxWorkers = 64

// resolveWorkers determines how many files are converted at once.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for
// containers). Never more than the number of files.
func resolveWorkers(requested, files int) int {
	n := requested
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	n = min(n, MaxWorkers, files)
	if n < 1 {
		return 1
	}
	return n
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}
