package glob

import (
	"fmt"

	"github.com/vvka-141/pathseq/pkg/pathseq"
)

// PatternError represents a rejected wildcard pattern with position context.
type PatternError struct {
	Pattern string // Pattern as written by the user
	Offset  int    // Byte offset of the offending character (-1 if not applicable)
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *PatternError) Error() string {
	msg := fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Message)
	if e.Offset >= 0 {
		msg = fmt.Sprintf("invalid pattern %q (offset %d): %s", e.Pattern, e.Offset, e.Message)
	}
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap makes errors.Is(err, pathseq.ErrInvalidPattern) hold.
func (e *PatternError) Unwrap() error {
	return pathseq.ErrInvalidPattern
}

func newPatternError(pattern string, offset int, message, hint string) *PatternError {
	return &PatternError{Pattern: pattern, Offset: offset, Message: message, Hint: hint}
}
