package filesystem

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync/atomic"
)

// fsCursor implements DirCursor over an fs.ReadDirFile
type fsCursor struct {
	owner  *FSFileSystem
	file   fs.ReadDirFile
	dir    string
	buf    []fs.DirEntry
	pos    int
	done   bool
	closed bool
	err    error
}

func (c *fsCursor) Next() (DirEntry, bool) {
	for {
		if c.closed {
			return DirEntry{}, false
		}
		if c.pos < len(c.buf) {
			e := c.buf[c.pos]
			c.pos++
			return DirEntry{Name: e.Name(), IsDir: e.IsDir(), Link: e.Type()&fs.ModeSymlink != 0}, true
		}
		if c.done {
			return DirEntry{}, false
		}

		entries, err := c.file.ReadDir(c.owner.batch)
		c.buf, c.pos = entries, 0
		if err != nil {
			c.done = true
			if !errors.Is(err, io.EOF) {
				c.err = fmt.Errorf("failed to read directory %s: %w", c.dir, err)
			}
		}
	}
}

func (c *fsCursor) Err() error { return c.err }

func (c *fsCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.buf = nil
	c.owner.open.Add(-1)
	return c.file.Close()
}

// FSFileSystem implements FileSystemProvider for any fs.FS.
// Paths are slash-separated; a leading slash is relative to root.
type FSFileSystem struct {
	fsys  fs.FS
	root  string
	batch int
	open  atomic.Int64
}

// NewFSFileSystem creates a provider wrapping fsys.
// The root parameter specifies the subdirectory within fsys to treat as the root.
func NewFSFileSystem(fsys fs.FS, root string) *FSFileSystem {
	root = path.Clean(strings.ReplaceAll(root, "\\", "/"))
	return &FSFileSystem{fsys: fsys, root: root, batch: 64}
}

// NewEmbedFileSystem creates a provider wrapping an embed.FS.
func NewEmbedFileSystem(embedFS embed.FS, root string) *FSFileSystem {
	return NewFSFileSystem(embedFS, root)
}

func (efs *FSFileSystem) resolve(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		p = "."
	}
	return path.Clean(path.Join(efs.root, p))
}

func (efs *FSFileSystem) OpenDir(openPath string) (DirCursor, error) {
	name := efs.resolve(openPath)

	f, err := efs.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", openPath, err)
	}
	rdf, ok := f.(fs.ReadDirFile)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	if info, err := f.Stat(); err != nil || !info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	efs.open.Add(1)
	return &fsCursor{owner: efs, file: rdf, dir: openPath}, nil
}

func (efs *FSFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(efs.fsys, efs.resolve(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}

func (efs *FSFileSystem) OpenHandles() int {
	return int(efs.open.Load())
}
