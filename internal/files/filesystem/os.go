package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
)

// osCursor implements DirCursor over an open *os.File
type osCursor struct {
	owner  *OSFileSystem
	file   *os.File
	dir    string
	batch  int
	buf    []fs.DirEntry
	pos    int
	done   bool
	closed bool
	err    error
}

func (c *osCursor) Next() (DirEntry, bool) {
	for {
		if c.closed {
			return DirEntry{}, false
		}
		if c.pos < len(c.buf) {
			e := c.buf[c.pos]
			c.pos++
			return c.classify(e), true
		}
		if c.done {
			return DirEntry{}, false
		}

		entries, err := c.file.ReadDir(c.batch)
		c.buf, c.pos = entries, 0
		if err != nil {
			c.done = true
			if !errors.Is(err, io.EOF) {
				c.err = fmt.Errorf("failed to read directory %s: %w", c.dir, err)
			}
		}
	}
}

func (c *osCursor) classify(e fs.DirEntry) DirEntry {
	entry := DirEntry{Name: e.Name(), IsDir: e.IsDir()}
	if e.Type()&fs.ModeSymlink != 0 {
		entry.Link = true
		if info, err := os.Stat(filepath.Join(c.dir, e.Name())); err == nil {
			entry.IsDir = info.IsDir()
		}
	}
	return entry
}

func (c *osCursor) Err() error { return c.err }

func (c *osCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.buf = nil
	c.owner.open.Add(-1)
	return c.file.Close()
}

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct {
	batch int
	open  atomic.Int64
}

// NewOSFileSystem creates a new OS filesystem provider.
// batch is the number of entries fetched per read; values below 1 select 128.
func NewOSFileSystem(batch int) *OSFileSystem {
	if batch < 1 {
		batch = 128
	}
	return &OSFileSystem{batch: batch}
}

func (p *OSFileSystem) OpenDir(path string) (DirCursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	p.open.Add(1)
	return &osCursor{owner: p, file: f, dir: path, batch: p.batch}, nil
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

func (p *OSFileSystem) OpenHandles() int {
	return int(p.open.Load())
}
