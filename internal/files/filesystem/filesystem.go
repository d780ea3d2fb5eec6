package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// DirEntry is one raw entry of a directory listing.
type DirEntry struct {
	// Name is the base name of the entry
	Name string

	// IsDir reports whether the entry resolves to a directory
	IsDir bool

	// Link is set when the entry is a symbolic link. Scans never descend through links.
	Link bool
}

// DirCursor walks the entries of one open directory lazily.
// A cursor holds an OS handle until Close is called; Close is idempotent.
type DirCursor interface {
	// Next returns the next entry. It returns false once the listing is exhausted
	// or a read error occurred; Err distinguishes the two.
	Next() (DirEntry, bool)

	// Err returns the error that ended the listing early, if any.
	Err() error

	// Close releases the directory handle.
	Close() error
}

// FileSystemProvider is the OS access layer used by every scan.
type FileSystemProvider interface {
	// OpenDir opens a directory cursor at the specified path
	OpenDir(path string) (DirCursor, error)

	// Stat returns file information for the given path, following links
	Stat(path string) (FileInfo, error)

	// OpenHandles returns the number of directory cursors currently open
	OpenHandles() int
}

// Exists reports whether anything exists at path.
func Exists(p FileSystemProvider, path string) bool {
	_, err := p.Stat(path)
	return err == nil
}

// DirectoryExists reports whether path is an existing directory.
func DirectoryExists(p FileSystemProvider, path string) bool {
	info, err := p.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists reports whether path is an existing regular file.
func FileExists(p FileSystemProvider, path string) bool {
	info, err := p.Stat(path)
	return err == nil && !info.IsDir()
}
