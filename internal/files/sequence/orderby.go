package sequence

import (
	"github.com/tidwall/btree"

	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/internal/runctl"
)

// orderEntry is one buffered candidate with its evaluated sort keys.
type orderEntry struct {
	seq  int
	snap candidate.Snapshot
	keys []keyValue
}

// orderBy buffers its child and replays it sorted.
type orderBy struct {
	child   Sequence
	run     *runctl.State
	keys    []Key
	items   []orderEntry
	pos     int
	value   string
	started bool
	done    bool
}

// OrderBy sorts the whole output of child by keys, compared left to right.
// Candidates equal on every key keep their input order. The child must be
// finite. A run stopped while buffering yields nothing.
func OrderBy(child Sequence, run *runctl.State, keys ...Key) Sequence {
	ctx := child.Context()
	for _, k := range keys {
		ctx.Request(k.Mask)
	}
	return &orderBy{child: child, run: run, keys: keys}
}

func (o *orderBy) Reset() {
	if o.started {
		o.child.Reset()
	}
	o.items, o.pos = nil, 0
	o.started, o.done = false, false
}

func (o *orderBy) less(a, b orderEntry) bool {
	for i, k := range o.keys {
		c := k.compare(a.keys[i], b.keys[i])
		if c != 0 {
			return c < 0
		}
	}
	return a.seq < b.seq
}

func (o *orderBy) fill() {
	tree := btree.NewBTreeG[orderEntry](o.less)
	ctx := o.child.Context()

	seq := 0
	for o.child.Next() {
		e := orderEntry{seq: seq, snap: ctx.Snapshot(), keys: make([]keyValue, len(o.keys))}
		for i, k := range o.keys {
			e.keys[i] = k.eval(ctx)
		}
		tree.Set(e)
		seq++
	}

	if !o.run.Running() {
		return
	}
	o.items = tree.Items()
}

func (o *orderBy) Next() bool {
	if o.done {
		return false
	}
	if !o.started {
		o.started = true
		o.fill()
	}
	if o.pos >= len(o.items) {
		o.done = true
		o.items = nil
		return false
	}

	e := o.items[o.pos]
	ctx := o.child.Context()
	ctx.Restore(e.snap)
	ctx.SetIndex(o.pos)
	o.value = e.snap.Value
	o.pos++
	return true
}

func (o *orderBy) Value() string               { return o.value }
func (o *orderBy) Context() *candidate.Context { return o.child.Context() }
