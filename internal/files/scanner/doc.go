// Package scanner produces path sequences from the filesystem.
//
// The package provides:
//   - DirectoryScan: lists the direct entries of one directory
//   - RecursiveScan: walks a tree depth-first with an explicit frame stack
//   - DoubleAsteriskScan: filters a recursive walk against a "**" pattern
//   - Expand: turns a wildcard pattern into a composed sequence
//
// Every scan holds at most the directory handles of its current walk. They
// are released on exhaustion, on Reset and when the run stops. Errors from
// the filesystem are logged at verbose level and never surface to callers;
// an unreadable directory simply contributes no entries.
package scanner
