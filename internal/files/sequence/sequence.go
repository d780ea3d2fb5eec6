// Package sequence defines the pull-based path sequence contract and the
// combinators that filter, reorder and join sequences.
//
// A Sequence produces values one at a time:
//
//	for seq.Next() {
//	    ctx := seq.Context()
//	    fmt.Println(seq.Value(), ctx.Index(), ctx.Depth())
//	}
//
// After Next returns false the sequence stays exhausted until Reset. Reset
// returns a sequence to its freshly built state and releases any directory
// handle it holds; calling it twice is harmless. Value and the context
// fields are only meaningful after Next returned true.
package sequence

import (
	"github.com/vvka-141/pathseq/internal/files/candidate"
)

// Sequence is a lazy, restartable producer of paths.
type Sequence interface {
	// Reset rewinds to the state before the first Next, closing OS resources.
	Reset()

	// Next advances to the next value and reports whether one is available.
	Next() bool

	// Value returns the current path.
	Value() string

	// Context returns the candidate context describing the current path.
	Context() *candidate.Context
}

// Predicate decides whether the current candidate passes a filter.
type Predicate func(ctx *candidate.Context) bool

// Collect drains seq from a fresh state and returns every value. The
// sequence is left reset.
func Collect(seq Sequence) []string {
	seq.Reset()
	var out []string
	for seq.Next() {
		out = append(out, seq.Value())
	}
	seq.Reset()
	return out
}

// Count drains seq from a fresh state and returns the number of values.
func Count(seq Sequence) int {
	seq.Reset()
	n := 0
	for seq.Next() {
		n++
	}
	seq.Reset()
	return n
}

// list emits a fixed set of values.
type list struct {
	ctx    *candidate.Context
	values []string
	pos    int
}

// Values returns a sequence over literal paths. Each value is loaded into ctx
// when emitted, so its properties are read from the filesystem on demand.
func Values(ctx *candidate.Context, values ...string) Sequence {
	return &list{ctx: ctx, values: values}
}

func (l *list) Reset() { l.pos = 0 }

func (l *list) Next() bool {
	if l.pos >= len(l.values) {
		return false
	}
	l.ctx.Load(l.values[l.pos])
	l.ctx.SetDepth(0)
	l.ctx.SetIndex(l.pos)
	l.pos++
	return true
}

func (l *list) Value() string { return l.values[l.pos-1] }

func (l *list) Context() *candidate.Context { return l.ctx }

// Empty returns a sequence that never produces a value.
func Empty(ctx *candidate.Context) Sequence {
	return &list{ctx: ctx}
}

// transfer positions dst at the current candidate of src.
func transfer(dst, src *candidate.Context) {
	if dst != src {
		dst.Restore(src.Snapshot())
	}
}
