package scanner

import (
	"path/filepath"

	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/internal/files/filesystem"
	"github.com/vvka-141/pathseq/internal/files/glob"
)

// Options configure a scan.
type Options struct {
	Kind Kind
	// Pattern filters entry names. Empty accepts every name.
	Pattern  string
	PathType PathType
	// Prefix is prepended to relative values so they resolve against the
	// context location rather than the scanned directory.
	Prefix string
	// Anchored scans move the context location to the scanned directory.
	// Inner scans of a nested chain use it to resolve their own values.
	Anchored bool
}

// DirectoryScan lists the direct entries of one directory.
type DirectoryScan struct {
	env     *Env
	ctx     *candidate.Context
	base    Source
	opts    Options
	pattern *glob.Pattern

	dir     string
	cursor  filesystem.DirCursor
	index   int
	value   string
	started bool
	done    bool
}

// NewDirectoryScan creates a scan over the directory produced by base.
// Returns an error if the name pattern is invalid.
func NewDirectoryScan(env *Env, ctx *candidate.Context, base Source, opts Options) (*DirectoryScan, error) {
	p, err := compileName(opts.Pattern)
	if err != nil {
		return nil, err
	}
	return &DirectoryScan{env: env, ctx: ctx, base: base, opts: opts, pattern: p}, nil
}

func compileName(pattern string) (*glob.Pattern, error) {
	if pattern == "" {
		return nil, nil
	}
	p, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if p.MatchesAll() {
		return nil, nil
	}
	return p, nil
}

// Reset releases the open handle and rewinds the scan.
func (d *DirectoryScan) Reset() {
	d.close()
	d.started, d.done, d.index = false, false, 0
}

func (d *DirectoryScan) close() {
	if d.cursor != nil {
		d.cursor.Close()
		d.cursor = nil
	}
}

func (d *DirectoryScan) finish() bool {
	d.close()
	d.done = true
	return false
}

// Next advances to the next accepted entry.
func (d *DirectoryScan) Next() bool {
	if d.done {
		return false
	}
	if !d.started {
		d.started = true
		d.dir = d.base()
		if d.opts.Anchored {
			d.ctx.SetLocation(d.dir)
		}
		c, err := d.env.FS.OpenDir(d.dir)
		if err != nil {
			d.env.absorb(d.dir, err)
			return d.finish()
		}
		d.cursor = c
	}

	for {
		if !d.env.Run.Running() {
			return d.finish()
		}
		e, ok := d.cursor.Next()
		if !ok {
			if err := d.cursor.Err(); err != nil {
				d.env.absorb(d.dir, err)
			}
			return d.finish()
		}
		if !accept(d.env, d.opts.Kind, d.pattern, e) {
			continue
		}
		d.value = entryValue(d.opts, d.dir, "", e.Name)
		d.ctx.LoadEntry(d.value, e.IsDir)
		d.ctx.SetDepth(0)
		d.ctx.SetIndex(d.index)
		d.index++
		return true
	}
}

func (d *DirectoryScan) Value() string               { return d.value }
func (d *DirectoryScan) Context() *candidate.Context { return d.ctx }

// accept applies the entry filters shared by every scan. Reserved directories
// and script files are skipped unless the no-omit flag is set.
func accept(env *Env, kind Kind, pattern *glob.Pattern, e filesystem.DirEntry) bool {
	if e.Name == "." || e.Name == ".." {
		return false
	}
	if e.IsDir {
		if !kind.wantsDirs() || env.Flags.IsReserved(e.Name) {
			return false
		}
	} else if !kind.wantsFiles() || env.Flags.IsScript(e.Name) {
		return false
	}
	return pattern == nil || pattern.Match(e.Name)
}

func entryValue(opts Options, dir, rel, name string) string {
	if opts.PathType == Absolute {
		return filepath.Join(dir, name)
	}
	return filepath.Join(opts.Prefix, rel, name)
}
