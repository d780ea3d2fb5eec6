package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// errInjectedRead is returned by cursors of directories registered with FailAfter
var errInjectedRead = errors.New("injected read failure")

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
	meta    *Metadata
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }

func (f *memoryFileInfo) Sys() interface{} {
	if f.meta == nil {
		return nil
	}
	return f.meta
}

// memoryCursor implements DirCursor over a snapshot of child names.
// Children removed after the snapshot are skipped.
type memoryCursor struct {
	fs     *MemoryFileSystem
	dir    string
	names  []string
	pos    int
	served int
	limit  int
	closed bool
	err    error
}

func (c *memoryCursor) Next() (DirEntry, bool) {
	if c.closed || c.err != nil {
		return DirEntry{}, false
	}
	for c.pos < len(c.names) {
		if c.limit >= 0 && c.served >= c.limit {
			c.err = fmt.Errorf("failed to read directory %s: %w", c.dir, errInjectedRead)
			return DirEntry{}, false
		}
		name := c.names[c.pos]
		c.pos++

		info, ok := c.fs.lookup(path.Join(c.dir, name))
		if !ok {
			continue
		}
		c.served++
		return DirEntry{Name: name, IsDir: info.isDir}, true
	}
	return DirEntry{}, false
}

func (c *memoryCursor) Err() error { return c.err }

func (c *memoryCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.fs.mu.Lock()
	c.fs.open--
	c.fs.mu.Unlock()
	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// It counts open cursors and Stat calls, and can simulate unreadable
// directories and listings that fail part way through.
type MemoryFileSystem struct {
	mu        sync.Mutex
	files     map[string]*memoryFileInfo // map of absolute path -> info
	root      string                     // root directory path
	denied    map[string]bool
	failAfter map[string]int
	open      int
	stats     int
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files:     make(map[string]*memoryFileInfo),
		root:      root,
		denied:    make(map[string]bool),
		failAfter: make(map[string]int),
	}
	mfs.files[root] = newDirInfo(root)
	return mfs
}

func newDirInfo(p string) *memoryFileInfo {
	return &memoryFileInfo{
		name:    path.Base(p),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}
}

// Root returns the normalized root directory.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// abs resolves p against the root.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) lookup(p string) (*memoryFileInfo, bool) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	info, ok := mfs.files[p]
	return info, ok
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.abs(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[absPath] = &memoryFileInfo{
		name:    path.Base(absPath),
		size:    int64(len(content)),
		mode:    0644,
		modTime: modTime,
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory and its parents
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = newDirInfo(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// SetMetadata attaches extended metadata returned through FileInfo.Sys.
func (mfs *MemoryFileSystem) SetMetadata(p string, meta Metadata) error {
	absPath := mfs.abs(p)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	info, ok := mfs.files[absPath]
	if !ok {
		return fmt.Errorf("path not found: %s", p)
	}
	info.meta = &meta
	if !meta.Modification.IsZero() {
		info.modTime = meta.Modification
	}
	return nil
}

// Remove deletes a path and everything beneath it.
func (mfs *MemoryFileSystem) Remove(p string) {
	absPath := mfs.abs(p)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	for key := range mfs.files {
		if key == absPath || strings.HasPrefix(key, absPath+"/") {
			delete(mfs.files, key)
		}
	}
}

// Deny makes OpenDir on p fail with a permission error.
func (mfs *MemoryFileSystem) Deny(p string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.denied[mfs.abs(p)] = true
}

// FailAfter makes listings of p fail after n entries have been returned.
func (mfs *MemoryFileSystem) FailAfter(p string, n int) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.failAfter[mfs.abs(p)] = n
}

// StatCalls returns the number of Stat calls made so far.
func (mfs *MemoryFileSystem) StatCalls() int {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return mfs.stats
}

// ensureDirectoriesExist creates directory entries for all parent directories.
// Callers hold mu.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath || dir == "." {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = newDirInfo(dir)
	mfs.ensureDirectoriesExist(dir)
}

// childrenOf returns the sorted names of the direct children of dir.
// Callers hold mu.
func (mfs *MemoryFileSystem) childrenOf(dir string) []string {
	var names []string
	for p := range mfs.files {
		if p != dir && path.Dir(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	sort.Strings(names)
	return names
}

// OpenDir implements FileSystemProvider.OpenDir
func (mfs *MemoryFileSystem) OpenDir(openPath string) (DirCursor, error) {
	absPath := mfs.abs(openPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	info, exists := mfs.files[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: openPath, Err: fs.ErrNotExist}
	}
	if !info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	if mfs.denied[absPath] {
		return nil, &fs.PathError{Op: "open", Path: openPath, Err: fs.ErrPermission}
	}

	limit, ok := mfs.failAfter[absPath]
	if !ok {
		limit = -1
	}
	mfs.open++
	return &memoryCursor{
		fs:    mfs,
		dir:   absPath,
		names: mfs.childrenOf(absPath),
		limit: limit,
	}, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.abs(statPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.stats++

	info, exists := mfs.files[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return info, nil
}

// OpenHandles implements FileSystemProvider.OpenHandles
func (mfs *MemoryFileSystem) OpenHandles() int {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return mfs.open
}
