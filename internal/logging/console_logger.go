package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/vvka-141/pathseq/pkg/pathseq"
)

var _ pathseq.Logger = (*ConsoleLogger)(nil)

// ConsoleLogger writes log messages to stderr or another writer.
// Prefixes are colored only when the writer is a terminal and NO_COLOR is unset.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	w       io.Writer
	verbose bool
	color   bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger writing to stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose)
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to w.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		w:       w,
		verbose: verbose,
		color:   isTerminal(w),
	}
}

// isTerminal reports whether w is a terminal that should receive colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (l *ConsoleLogger) write(prefix *color.Color, tag, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	switch {
	case tag == "":
		fmt.Fprintln(l.w, msg)
	case l.color:
		fmt.Fprintln(l.w, prefix.Sprint(tag)+" "+msg)
	default:
		fmt.Fprintln(l.w, tag+" "+msg)
	}
}

var (
	verboseColor = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(verboseColor, "[VERBOSE]", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(nil, "", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(errorColor, "[ERROR]", format, args)
}
