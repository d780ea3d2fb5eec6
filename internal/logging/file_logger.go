package logging

import (
	"fmt"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vvka-141/pathseq/pkg/pathseq"
)

var _ pathseq.Logger = (*FileLogger)(nil)

const timeFormat = "2006-01-02 15:04:05"

// Rotation limits for log files.
const (
	maxSizeMB  = 16
	maxBackups = 3
	maxAgeDays = 14
)

// FileLogger appends timestamped lines to a rotating log file.
// Safe for concurrent use by multiple goroutines.
type FileLogger struct {
	out     *lumberjack.Logger
	verbose bool
	now     func() time.Time
	mu      sync.Mutex
}

// NewFileLogger creates a logger writing to path. The file and its parent
// directory are created on the first write.
func NewFileLogger(path string, verbose bool) *FileLogger {
	return &FileLogger{
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		},
		verbose: verbose,
		now:     time.Now,
	}
}

func (l *FileLogger) write(level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s %-7s %s\n", l.now().Format(timeFormat), level, msg)
}

// Verbose logs diagnostic information if verbose mode is enabled.
func (l *FileLogger) Verbose(format string, args ...interface{}) {
	if l.verbose {
		l.write("VERBOSE", format, args)
	}
}

// Info logs informational messages.
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args)
}

// Error logs error messages.
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args)
}

// Close releases the log file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Close()
}
