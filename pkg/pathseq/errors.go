package pathseq

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	seq, err := scanner.Expand(env, "src/**/*.go")
//	if errors.Is(err, pathseq.ErrInvalidPattern) {
//	    // Report the pattern back to the user
//	}
var (
	// ErrInvalidPattern indicates a glob pattern was rejected while building a sequence.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidOrderKey indicates an order-by key that names no known attribute.
	ErrInvalidOrderKey = errors.New("invalid order key")

	// ErrUsage indicates command line arguments that cannot be combined or are out of range.
	ErrUsage = errors.New("usage error")

	// ErrCancelled indicates the run was stopped before the listing completed.
	ErrCancelled = errors.New("run cancelled")
)

// usagePatterns are fragments of cobra/pflag messages produced by command line misuse.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidPattern), errors.Is(err, ErrInvalidOrderKey), errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
