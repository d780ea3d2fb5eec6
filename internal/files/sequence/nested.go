package sequence

import (
	"path/filepath"

	"github.com/vvka-141/pathseq/internal/files/candidate"
)

// Vessel carries the directory an inner sequence lists, set by Nested for
// each outer value.
type Vessel struct {
	path string
}

// NewVessel creates a vessel holding an initial location.
func NewVessel(initial string) *Vessel { return &Vessel{path: initial} }

// Set replaces the carried location.
func (v *Vessel) Set(path string) { v.path = path }

// Location returns the carried location.
func (v *Vessel) Location() string { return v.path }

// nested runs an inner sequence once per outer value.
type nested struct {
	outer, inner Sequence
	vessel       *Vessel
	absolute     bool
	outerValue   string
	innerOpen    bool
	index        int
	value        string
	started      bool
	done         bool
}

// Nested lists inner under every value of outer. Before each inner pass the
// vessel receives the absolute path of the outer value. Inner values are
// joined onto the outer value unless absolute is set.
func Nested(outer Sequence, vessel *Vessel, inner Sequence, absolute bool) Sequence {
	return &nested{outer: outer, inner: inner, vessel: vessel, absolute: absolute}
}

func (n *nested) Reset() {
	if n.innerOpen {
		n.inner.Reset()
	}
	if n.started {
		n.outer.Reset()
	}
	n.innerOpen, n.started, n.done = false, false, false
	n.index = 0
}

func (n *nested) Next() bool {
	if n.done {
		return false
	}
	n.started = true
	ctx := n.outer.Context()

	for {
		if n.innerOpen {
			if n.inner.Next() {
				v := n.inner.Value()
				if !n.absolute {
					v = filepath.Join(n.outerValue, v)
				}
				snap := n.inner.Context().Snapshot()
				snap.Value = v
				ctx.Restore(snap)
				ctx.SetIndex(n.index)
				n.index++
				n.value = v
				return true
			}
			n.innerOpen = false
		}

		if !n.outer.Next() {
			n.done = true
			return false
		}
		n.outerValue = n.outer.Value()
		n.vessel.Set(ctx.Path())
		n.inner.Reset()
		n.innerOpen = true
	}
}

func (n *nested) Value() string               { return n.value }
func (n *nested) Context() *candidate.Context { return n.outer.Context() }
