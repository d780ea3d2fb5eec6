// Package filesystem provides the OS access layer used by path scans.
//
// Scans never list a directory eagerly. They open a DirCursor, pull entries
// one at a time and close the cursor as soon as they stop, so the number of
// open handles is observable through FileSystemProvider.OpenHandles.
//
// Key types:
//   - FileSystemProvider: directory cursors, stat and the handle-count hook
//   - DirCursor: lazy listing of one directory
//   - Metadata: timestamps and attribute flags extracted from FileInfo
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing, with fault injection
//   - FSFileSystem: adapter for any io/fs.FS, including embed.FS
package filesystem
