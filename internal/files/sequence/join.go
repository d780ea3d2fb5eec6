package sequence

import (
	"github.com/vvka-141/pathseq/internal/files/candidate"
)

// join concatenates two sequences.
type join struct {
	ctx         *candidate.Context
	left, right Sequence
	onRight     bool
	leftOpened  bool
	rightOpened bool
	index       int
	value       string
	done        bool
}

// Join emits every value of left followed by every value of right. Each
// value is positioned in ctx and numbered across both parts.
func Join(ctx *candidate.Context, left, right Sequence) Sequence {
	return &join{ctx: ctx, left: left, right: right}
}

// JoinValue emits value, then seq.
func JoinValue(ctx *candidate.Context, value string, seq Sequence) Sequence {
	return Join(ctx, Values(ctx, value), seq)
}

// AppendValue emits seq, then value.
func AppendValue(ctx *candidate.Context, seq Sequence, value string) Sequence {
	return Join(ctx, seq, Values(ctx, value))
}

// JoinList emits values, then seq.
func JoinList(ctx *candidate.Context, values []string, seq Sequence) Sequence {
	return Join(ctx, Values(ctx, values...), seq)
}

// AppendList emits seq, then values.
func AppendList(ctx *candidate.Context, seq Sequence, values []string) Sequence {
	return Join(ctx, seq, Values(ctx, values...))
}

func (j *join) Reset() {
	if j.leftOpened {
		j.left.Reset()
	}
	if j.rightOpened {
		j.right.Reset()
	}
	j.onRight, j.leftOpened, j.rightOpened = false, false, false
	j.index, j.done = 0, false
}

func (j *join) emit(s Sequence) bool {
	transfer(j.ctx, s.Context())
	j.ctx.SetIndex(j.index)
	j.index++
	j.value = s.Value()
	return true
}

func (j *join) Next() bool {
	if j.done {
		return false
	}
	if !j.onRight {
		j.leftOpened = true
		if j.left.Next() {
			return j.emit(j.left)
		}
		j.onRight = true
	}
	j.rightOpened = true
	if j.right.Next() {
		return j.emit(j.right)
	}
	j.done = true
	return false
}

func (j *join) Value() string               { return j.value }
func (j *join) Context() *candidate.Context { return j.ctx }
