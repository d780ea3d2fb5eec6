package sequence

import (
	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/internal/runctl"
)

// final keeps the last n candidates of its child in a ring buffer.
type final struct {
	child   Sequence
	run     *runctl.State
	n       int
	ring    []candidate.Snapshot
	head    int
	pos     int
	value   string
	started bool
	done    bool
}

// Final emits the last n candidates of child in their original order once
// the child is exhausted, numbering them from 0. n < 1 yields nothing.
// A run stopped while buffering yields nothing.
func Final(child Sequence, run *runctl.State, n int) Sequence {
	return &final{child: child, run: run, n: n}
}

func (f *final) Reset() {
	if f.started {
		f.child.Reset()
	}
	f.ring, f.head, f.pos = nil, 0, 0
	f.started, f.done = false, false
}

// fill grows the ring up to n entries, then overwrites the oldest.
func (f *final) fill() {
	ctx := f.child.Context()
	for f.child.Next() {
		snap := ctx.Snapshot()
		if len(f.ring) < f.n {
			f.ring = append(f.ring, snap)
			continue
		}
		f.ring[f.head] = snap
		f.head = (f.head + 1) % f.n
	}
}

func (f *final) Next() bool {
	if f.done {
		return false
	}
	if f.n < 1 {
		f.done = true
		return false
	}
	if !f.started {
		f.started = true
		f.fill()
		if !f.run.Running() {
			f.ring = nil
		}
	}
	if f.pos >= len(f.ring) {
		f.done = true
		f.ring = nil
		return false
	}

	snap := f.ring[(f.head+f.pos)%len(f.ring)]
	ctx := f.child.Context()
	ctx.Restore(snap)
	ctx.SetIndex(f.pos)
	f.value = snap.Value
	f.pos++
	return true
}

func (f *final) Value() string               { return f.value }
func (f *final) Context() *candidate.Context { return f.child.Context() }
