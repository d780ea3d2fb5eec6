package sequence

import (
	"github.com/vvka-141/pathseq/internal/files/candidate"
)

// where forwards candidates accepted by a predicate.
type where struct {
	child   Sequence
	pred    Predicate
	started bool
	done    bool
	index   int
}

// Where keeps the candidates for which pred returns true and renumbers them.
// pred may read any property of the context, widening its mask.
func Where(child Sequence, pred Predicate) Sequence {
	return &where{child: child, pred: pred}
}

func (w *where) Reset() {
	if w.started {
		w.child.Reset()
	}
	w.started, w.done, w.index = false, false, 0
}

func (w *where) Next() bool {
	if w.done {
		return false
	}
	w.started = true
	for w.child.Next() {
		ctx := w.child.Context()
		if w.pred(ctx) {
			ctx.SetIndex(w.index)
			w.index++
			return true
		}
	}
	w.done = true
	return false
}

func (w *where) Value() string               { return w.child.Value() }
func (w *where) Context() *candidate.Context { return w.child.Context() }

// limit forwards a prefix of its child.
type limit struct {
	child   Sequence
	n       int
	count   int
	started bool
	done    bool
}

// Limit forwards at most n candidates. Reaching the limit resets the child so
// it releases its handles; n <= 0 yields nothing.
func Limit(child Sequence, n int) Sequence {
	return &limit{child: child, n: n}
}

func (l *limit) Reset() {
	if l.started {
		l.child.Reset()
	}
	l.started, l.done, l.count = false, false, 0
}

func (l *limit) Next() bool {
	if l.done {
		return false
	}
	if l.count >= l.n {
		if l.started {
			l.child.Reset()
			l.started = false
		}
		l.done = true
		return false
	}
	l.started = true
	if !l.child.Next() {
		l.done = true
		return false
	}
	l.count++
	return true
}

func (l *limit) Value() string               { return l.child.Value() }
func (l *limit) Context() *candidate.Context { return l.child.Context() }

// skip drops a prefix of its child.
type skip struct {
	child   Sequence
	n       int
	started bool
	done    bool
}

// Skip discards the first n candidates and forwards the rest, shifting their
// index down by n. n <= 0 passes everything through.
func Skip(child Sequence, n int) Sequence {
	if n < 0 {
		n = 0
	}
	return &skip{child: child, n: n}
}

func (s *skip) Reset() {
	if s.started {
		s.child.Reset()
	}
	s.started, s.done = false, false
}

func (s *skip) Next() bool {
	if s.done {
		return false
	}
	if !s.started {
		s.started = true
		for i := 0; i < s.n; i++ {
			if !s.child.Next() {
				s.done = true
				return false
			}
		}
	}
	if !s.child.Next() {
		s.done = true
		return false
	}
	ctx := s.child.Context()
	ctx.SetIndex(ctx.Index() - s.n)
	return true
}

func (s *skip) Value() string               { return s.child.Value() }
func (s *skip) Context() *candidate.Context { return s.child.Context() }

// every forwards every n-th candidate.
type every struct {
	child   Sequence
	n       int
	pos     int
	index   int
	started bool
	done    bool
}

// Every forwards the 1st, (1+n)-th, (1+2n)-th candidate and so on,
// renumbering them. n < 1 is treated as 1.
func Every(child Sequence, n int) Sequence {
	if n < 1 {
		n = 1
	}
	return &every{child: child, n: n}
}

func (e *every) Reset() {
	if e.started {
		e.child.Reset()
	}
	e.started, e.done, e.pos, e.index = false, false, 0, 0
}

func (e *every) Next() bool {
	if e.done {
		return false
	}
	e.started = true
	for e.child.Next() {
		accept := e.pos%e.n == 0
		e.pos++
		if accept {
			e.child.Context().SetIndex(e.index)
			e.index++
			return true
		}
	}
	e.done = true
	return false
}

func (e *every) Value() string               { return e.child.Value() }
func (e *every) Context() *candidate.Context { return e.child.Context() }
