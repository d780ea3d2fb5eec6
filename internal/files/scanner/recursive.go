package scanner

import (
	"path/filepath"

	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/internal/files/filesystem"
	"github.com/vvka-141/pathseq/internal/files/glob"
)

// frame is one directory being listed by a recursive walk.
type frame struct {
	dir    string
	rel    string
	depth  int
	cursor filesystem.DirCursor
}

// RecursiveScan walks a directory tree depth-first. A directory is emitted
// before its contents. Links to directories are emitted but not entered.
type RecursiveScan struct {
	env     *Env
	ctx     *candidate.Context
	base    Source
	opts    Options
	pattern *glob.Pattern

	stack   []frame
	rel     string
	index   int
	value   string
	started bool
	done    bool
}

// NewRecursiveScan creates a walk of the tree rooted at the directory produced by base.
// The name pattern filters emitted entries only; every directory is still entered.
// Returns an error if the name pattern is invalid.
func NewRecursiveScan(env *Env, ctx *candidate.Context, base Source, opts Options) (*RecursiveScan, error) {
	p, err := compileName(opts.Pattern)
	if err != nil {
		return nil, err
	}
	return &RecursiveScan{env: env, ctx: ctx, base: base, opts: opts, pattern: p}, nil
}

// Reset closes every open frame and rewinds the walk.
func (r *RecursiveScan) Reset() {
	r.closeAll()
	r.started, r.done, r.index = false, false, 0
}

// OpenFrames returns the number of directories currently held open.
func (r *RecursiveScan) OpenFrames() int {
	n := 0
	for _, f := range r.stack {
		if f.cursor != nil {
			n++
		}
	}
	return n
}

func (r *RecursiveScan) closeAll() {
	for i := range r.stack {
		if r.stack[i].cursor != nil {
			r.stack[i].cursor.Close()
			r.stack[i].cursor = nil
		}
	}
	r.stack = r.stack[:0]
}

func (r *RecursiveScan) pop() {
	top := &r.stack[len(r.stack)-1]
	if top.cursor != nil {
		if err := top.cursor.Err(); err != nil {
			r.env.absorb(top.dir, err)
		}
		top.cursor.Close()
		top.cursor = nil
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// Next advances to the next accepted entry of the walk.
func (r *RecursiveScan) Next() bool {
	if r.done {
		return false
	}
	if !r.started {
		r.started = true
		dir := r.base()
		if r.opts.Anchored {
			r.ctx.SetLocation(dir)
		}
		r.stack = append(r.stack, frame{dir: dir})
	}

	for len(r.stack) > 0 {
		if !r.env.Run.Running() {
			r.env.Logger.Verbose("[%s] walk of %s stopped", r.env.Run.ID(), r.stack[0].dir)
			r.closeAll()
			r.done = true
			return false
		}

		top := &r.stack[len(r.stack)-1]
		if top.cursor == nil {
			c, err := r.env.FS.OpenDir(top.dir)
			if err != nil {
				r.env.absorb(top.dir, err)
				r.stack = r.stack[:len(r.stack)-1]
				continue
			}
			top.cursor = c
		}

		e, ok := top.cursor.Next()
		if !ok {
			r.pop()
			continue
		}
		if e.Name == "." || e.Name == ".." {
			continue
		}
		if e.IsDir && r.env.Flags.IsReserved(e.Name) {
			continue
		}

		dir, rel, depth := top.dir, top.rel, top.depth
		if e.IsDir && !e.Link {
			// top is invalid after the append.
			r.stack = append(r.stack, frame{
				dir:   filepath.Join(dir, e.Name),
				rel:   filepath.Join(rel, e.Name),
				depth: depth + 1,
			})
		}
		if !accept(r.env, r.opts.Kind, r.pattern, e) {
			continue
		}

		r.rel = filepath.Join(rel, e.Name)
		r.value = entryValue(r.opts, dir, rel, e.Name)
		r.ctx.LoadEntry(r.value, e.IsDir)
		r.ctx.SetDepth(depth)
		r.ctx.SetIndex(r.index)
		r.index++
		return true
	}

	r.done = true
	return false
}

// Relative returns the current entry's path relative to the walk root.
func (r *RecursiveScan) Relative() string { return r.rel }

func (r *RecursiveScan) Value() string               { return r.value }
func (r *RecursiveScan) Context() *candidate.Context { return r.ctx }
