package sequence

import (
	"github.com/vvka-141/pathseq/internal/files/candidate"
)

// Condition is evaluated once per pass, at the first Next after a reset.
type Condition func() bool

// binary forwards its child only when a condition holds.
type binary struct {
	cond    Condition
	child   Sequence
	decided bool
	opened  bool
}

// Binary yields child when cond is true and nothing otherwise.
func Binary(cond Condition, child Sequence) Sequence {
	return &binary{cond: cond, child: child}
}

func (b *binary) Reset() {
	if b.opened {
		b.child.Reset()
	}
	b.decided, b.opened = false, false
}

func (b *binary) Next() bool {
	if !b.decided {
		b.decided = true
		b.opened = b.cond()
	}
	if !b.opened {
		return false
	}
	return b.child.Next()
}

func (b *binary) Value() string               { return b.child.Value() }
func (b *binary) Context() *candidate.Context { return b.child.Context() }

// ternary selects one of two sequences.
type ternary struct {
	ctx     *candidate.Context
	cond    Condition
	yes, no Sequence
	chosen  Sequence
}

// Ternary yields yes when cond is true and no otherwise. Values are
// positioned in ctx.
func Ternary(ctx *candidate.Context, cond Condition, yes, no Sequence) Sequence {
	return &ternary{ctx: ctx, cond: cond, yes: yes, no: no}
}

func (t *ternary) Reset() {
	if t.chosen != nil {
		t.chosen.Reset()
	}
	t.chosen = nil
}

func (t *ternary) Next() bool {
	if t.chosen == nil {
		if t.cond() {
			t.chosen = t.yes
		} else {
			t.chosen = t.no
		}
	}
	if !t.chosen.Next() {
		return false
	}
	transfer(t.ctx, t.chosen.Context())
	return true
}

func (t *ternary) Value() string               { return t.chosen.Value() }
func (t *ternary) Context() *candidate.Context { return t.ctx }
