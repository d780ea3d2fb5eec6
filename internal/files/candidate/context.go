// Package candidate holds the per-pipeline context describing the path
// currently under consideration. Properties are computed on first demand
// and cached until the next path is loaded.
package candidate

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/vvka-141/pathseq/internal/files/attr"
	"github.com/vvka-141/pathseq/internal/files/filesystem"
)

// NoDepth marks a context that has not been positioned by a scan.
const NoDepth = -1

// Context is shared by reference along one sequence pipeline. Only the
// stage that emits a value writes value, depth and index; predicates read
// properties and may widen the mask.
type Context struct {
	fs       filesystem.FileSystemProvider
	location string
	clock    func() time.Time

	value string
	depth int
	index int
	mask  attr.Mask

	abs      slot[string]
	info     slot[filesystem.FileInfo]
	exists   slot[bool]
	dir      slot[bool]
	meta     slot[filesystem.Metadata]
	size     slot[int64]
	empty    slot[bool]
	lifetime slot[time.Duration]
}

// Snapshot is the positional state of a context, enough to replay a buffered candidate.
type Snapshot struct {
	Value string
	Depth int
	IsDir bool
	known bool
}

// New creates a context resolving relative values against location.
func New(fs filesystem.FileSystemProvider, location string) *Context {
	if fs == nil {
		panic("candidate: filesystem provider cannot be nil")
	}
	return &Context{
		fs:       fs,
		location: location,
		clock:    time.Now,
		depth:    NoDepth,
	}
}

// WithClock replaces the time source used for lifetime.
func (c *Context) WithClock(clock func() time.Time) *Context {
	c.clock = clock
	return c
}

// FileSystem returns the provider used for stat calls.
func (c *Context) FileSystem() filesystem.FileSystemProvider { return c.fs }

// Location returns the directory relative values are resolved against.
func (c *Context) Location() string { return c.location }

// SetLocation changes the resolution directory and drops cached properties.
func (c *Context) SetLocation(location string) {
	if c.location == location {
		return
	}
	c.location = location
	c.invalidate()
}

// Request widens the attribute mask. The mask never shrinks.
func (c *Context) Request(m attr.Mask) {
	c.mask = c.mask.Union(m.Expand())
}

// Mask returns the attributes requested so far.
func (c *Context) Mask() attr.Mask { return c.mask }

// Load makes value the current candidate, dropping every cached property.
func (c *Context) Load(value string) {
	c.value = value
	c.invalidate()
	c.preload()
}

// LoadEntry is Load for a value that came from a directory listing, so its
// existence and kind are already known without a stat call.
func (c *Context) LoadEntry(value string, isDir bool) {
	c.value = value
	c.invalidate()
	c.exists.set(true)
	c.dir.set(isDir)
	c.preload()
}

// Snapshot captures the current position.
func (c *Context) Snapshot() Snapshot {
	s := Snapshot{Value: c.value, Depth: c.depth}
	if c.exists.ok && c.exists.value && c.dir.ok {
		s.IsDir, s.known = c.dir.value, true
	}
	return s
}

// Restore repositions the context at a snapshot taken earlier.
func (c *Context) Restore(s Snapshot) {
	if s.known {
		c.LoadEntry(s.Value, s.IsDir)
	} else {
		c.Load(s.Value)
	}
	c.depth = s.Depth
}

// Reload drops cached properties of the current value so they are read again.
func (c *Context) Reload() {
	c.invalidate()
	c.preload()
}

func (c *Context) invalidate() {
	c.abs.clear()
	c.info.clear()
	c.exists.clear()
	c.dir.clear()
	c.meta.clear()
	c.size.clear()
	c.empty.clear()
	c.lifetime.clear()
}

// kindMask covers the properties a directory listing already answers.
const kindMask = attr.Exists | attr.IsFile | attr.IsDirectory

// preload resolves the requested properties that cost at most one stat call.
// Directory totals and emptiness stay lazy even when requested.
func (c *Context) preload() {
	if c.mask.HasAny(attr.Path | attr.Parent | attr.Drive) {
		c.Path()
	}
	if c.mask.HasAny(kindMask) {
		c.present()
		c.isDir()
	}
	if c.mask.HasAny(attr.Stat &^ kindMask) {
		c.metadata()
	}
}

// SetIndex and SetDepth are reserved for the emitting stage.
func (c *Context) SetIndex(i int) { c.index = i }

func (c *Context) SetDepth(d int) { c.depth = d }

// Value returns the current path as emitted.
func (c *Context) Value() string { return c.value }

// Index returns the position of the current candidate in its sequence.
func (c *Context) Index() int { return c.index }

// Depth returns the directory depth of the current candidate, or NoDepth.
func (c *Context) Depth() int { return c.depth }

func (c *Context) trimmed() string {
	return strings.TrimRight(strings.TrimSpace(c.value), `/\`)
}

// Path returns the absolute path of the current candidate.
func (c *Context) Path() string {
	c.mask |= attr.Path
	return c.abs.get(func() string {
		v := c.trimmed()
		if filepath.IsAbs(v) || c.location == "" {
			return filepath.Clean(v)
		}
		return filepath.Join(c.location, v)
	})
}

// FullName returns the last path segment including its extension.
func (c *Context) FullName() string {
	c.mask |= attr.FullName
	v := c.trimmed()
	if i := strings.LastIndexAny(v, `/\`); i >= 0 {
		return v[i+1:]
	}
	return v
}

// Parent returns the absolute path of the containing directory.
func (c *Context) Parent() string {
	c.mask |= attr.Parent
	return filepath.Dir(c.Path())
}

// Drive returns the volume name of the absolute path, empty where volumes do not exist.
func (c *Context) Drive() string {
	c.mask |= attr.Drive
	return filepath.VolumeName(c.Path())
}

// extensionDot locates the dot starting the extension of a full name, or -1.
// A leading dot belongs to the name.
func extensionDot(full string) int {
	i := strings.LastIndexByte(full, '.')
	if i <= 0 || i == len(full)-1 {
		return -1
	}
	return i
}

// Name returns the last segment without its extension. Directories keep
// their full name.
func (c *Context) Name() string {
	c.mask |= attr.Name
	full := c.FullName()
	if c.IsDirectory() {
		return full
	}
	if i := extensionDot(full); i >= 0 {
		return full[:i]
	}
	return full
}

// Extension returns the lower-cased extension without its dot. It is empty
// for directories and names without an extension.
func (c *Context) Extension() string {
	c.mask |= attr.Extension
	if c.IsDirectory() {
		return ""
	}
	full := c.FullName()
	if i := extensionDot(full); i >= 0 {
		return strings.ToLower(full[i+1:])
	}
	return ""
}

func (c *Context) stat() filesystem.FileInfo {
	return c.info.get(func() filesystem.FileInfo {
		info, err := c.fs.Stat(c.Path())
		if err != nil {
			return nil
		}
		return info
	})
}

// Exists reports whether the current path exists.
func (c *Context) Exists() bool {
	c.mask |= attr.Exists
	return c.present()
}

func (c *Context) present() bool {
	return c.exists.get(func() bool { return c.stat() != nil })
}

// IsDirectory reports whether the current path is a directory. A missing
// path counts as a directory when its name has no extension.
func (c *Context) IsDirectory() bool {
	c.mask |= attr.IsDirectory
	return c.isDir()
}

func (c *Context) isDir() bool {
	return c.dir.get(func() bool {
		if info := c.stat(); info != nil {
			return info.IsDir()
		}
		return extensionDot(c.FullName()) < 0
	})
}

// IsFile is the complement of IsDirectory.
func (c *Context) IsFile() bool {
	c.mask |= attr.IsFile
	return !c.IsDirectory()
}

func (c *Context) metadata() (filesystem.Metadata, bool) {
	if !c.present() {
		return filesystem.Metadata{}, false
	}
	m := c.meta.get(func() filesystem.Metadata {
		info := c.stat()
		if info == nil {
			return filesystem.Metadata{}
		}
		return filesystem.Describe(info)
	})
	return m, true
}

func (c *Context) timeOf(flag attr.Mask, pick func(filesystem.Metadata) time.Time) time.Time {
	c.mask |= flag
	m, ok := c.metadata()
	if !ok {
		return time.Time{}
	}
	return pick(m)
}

// Access returns the last access time, zero when the path is missing.
func (c *Context) Access() time.Time {
	return c.timeOf(attr.Access, func(m filesystem.Metadata) time.Time { return m.Access })
}

// Creation returns the creation time, zero when the path is missing.
func (c *Context) Creation() time.Time {
	return c.timeOf(attr.Creation, func(m filesystem.Metadata) time.Time { return m.Creation })
}

// Modification returns the last write time, zero when the path is missing.
func (c *Context) Modification() time.Time {
	return c.timeOf(attr.Modification, func(m filesystem.Metadata) time.Time { return m.Modification })
}

// Change returns the last metadata change time, zero when the path is missing.
func (c *Context) Change() time.Time {
	return c.timeOf(attr.Change, func(m filesystem.Metadata) time.Time { return m.Change })
}

// Lifetime is the time elapsed since the earlier of creation and
// modification, zero when the path is missing.
func (c *Context) Lifetime() time.Duration {
	c.mask |= attr.Lifetime
	return c.lifetime.get(func() time.Duration {
		if !c.Exists() {
			return 0
		}
		start := c.Creation()
		if mod := c.Modification(); mod.Before(start) {
			start = mod
		}
		return c.clock().Sub(start)
	})
}

func (c *Context) flag(mask attr.Mask, f filesystem.Attributes) bool {
	c.mask |= mask
	m, ok := c.metadata()
	return ok && m.Attributes.Has(f)
}

func (c *Context) Hidden() bool     { return c.flag(attr.Hidden, filesystem.AttrHidden) }
func (c *Context) ReadOnly() bool   { return c.flag(attr.ReadOnly, filesystem.AttrReadOnly) }
func (c *Context) Archive() bool    { return c.flag(attr.Archive, filesystem.AttrArchive) }
func (c *Context) Compressed() bool { return c.flag(attr.Compressed, filesystem.AttrCompressed) }
func (c *Context) Encrypted() bool  { return c.flag(attr.Encrypted, filesystem.AttrEncrypted) }

// Size returns the size in bytes. For a directory it is the total size of
// every file beneath it. A missing path has size -1.
func (c *Context) Size() int64 {
	c.mask |= attr.Size
	return c.size.get(func() int64 {
		if !c.Exists() {
			return -1
		}
		if !c.IsDirectory() {
			if info := c.stat(); info != nil {
				return info.Size()
			}
			return -1
		}
		return directorySize(c.fs, c.Path())
	})
}

// Empty reports whether a file has no content or a directory has no entries.
func (c *Context) Empty() bool {
	c.mask |= attr.Empty
	return c.empty.get(func() bool {
		if !c.Exists() {
			return false
		}
		if !c.IsDirectory() {
			info := c.stat()
			return info != nil && info.Size() == 0
		}
		cur, err := c.fs.OpenDir(c.Path())
		if err != nil {
			return false
		}
		defer cur.Close()
		for {
			e, ok := cur.Next()
			if !ok {
				return cur.Err() == nil
			}
			if e.Name != "." && e.Name != ".." {
				return false
			}
		}
	})
}

// directorySize sums file sizes below root without recursion.
// Unreadable directories contribute nothing.
func directorySize(fs filesystem.FileSystemProvider, root string) int64 {
	var total int64
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur, err := fs.OpenDir(dir)
		if err != nil {
			continue
		}
		for {
			e, ok := cur.Next()
			if !ok {
				break
			}
			if e.Name == "." || e.Name == ".." {
				continue
			}
			p := filepath.Join(dir, e.Name)
			if e.IsDir {
				if !e.Link {
					stack = append(stack, p)
				}
				continue
			}
			if info, err := fs.Stat(p); err == nil {
				total += info.Size()
			}
		}
		cur.Close()
	}
	return total
}
