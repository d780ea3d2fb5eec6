package logging

import "github.com/vvka-141/pathseq/pkg/pathseq"

type tee []pathseq.Logger

// Tee returns a logger that forwards every message to each of loggers.
func Tee(loggers ...pathseq.Logger) pathseq.Logger {
	if len(loggers) == 1 {
		return loggers[0]
	}
	return tee(loggers)
}

func (t tee) Verbose(format string, args ...interface{}) {
	for _, l := range t {
		l.Verbose(format, args...)
	}
}

func (t tee) Info(format string, args ...interface{}) {
	for _, l := range t {
		l.Info(format, args...)
	}
}

func (t tee) Error(format string, args ...interface{}) {
	for _, l := range t {
		l.Error(format, args...)
	}
}
