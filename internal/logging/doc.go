// Package logging provides concrete implementations of the pathseq.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes to stderr, with colored prefixes on a terminal
//   - FileLogger: Writes timestamped lines to a size-rotated log file
//   - NullLogger: Discards all messages (useful for testing)
//   - Tee: Fans every message out to several loggers
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
