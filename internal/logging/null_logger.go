package logging

import "github.com/vvka-141/pathseq/pkg/pathseq"

var _ pathseq.Logger = (*NullLogger)(nil)

// NullLogger discards all log messages.
// Used by scans created without a logger.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}
func (l *NullLogger) Info(format string, args ...interface{})    {}
func (l *NullLogger) Error(format string, args ...interface{})   {}
