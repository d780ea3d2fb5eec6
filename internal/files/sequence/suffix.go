package sequence

import (
	"path/filepath"

	"github.com/vvka-141/pathseq/internal/files/candidate"
)

// suffix appends a fixed path tail to every candidate.
type suffix struct {
	child   Sequence
	tail    string
	final   bool
	index   int
	value   string
	started bool
	done    bool
}

// Suffix joins tail onto every value of child and keeps only results that
// exist. When final is false the result must be a directory, since further
// path segments will be appended to it.
func Suffix(child Sequence, tail string, final bool) Sequence {
	return &suffix{child: child, tail: tail, final: final}
}

func (s *suffix) Reset() {
	if s.started {
		s.child.Reset()
	}
	s.started, s.done, s.index = false, false, 0
}

func (s *suffix) Next() bool {
	if s.done {
		return false
	}
	s.started = true
	for s.child.Next() {
		v := filepath.Join(s.child.Value(), s.tail)
		ctx := s.child.Context()
		depth := ctx.Depth()
		ctx.Load(v)
		ctx.SetDepth(depth)

		ok := ctx.Exists()
		if !s.final {
			ok = ok && ctx.IsDirectory()
		}
		if ok {
			ctx.SetIndex(s.index)
			s.index++
			s.value = v
			return true
		}
	}
	s.done = true
	return false
}

func (s *suffix) Value() string               { return s.value }
func (s *suffix) Context() *candidate.Context { return s.child.Context() }
