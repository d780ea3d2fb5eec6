package scanner

import (
	"path/filepath"

	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/internal/files/glob"
)

// DoubleAsteriskScan keeps the entries of a recursive walk whose path matches
// a pattern containing "**". Relative entries are matched against
// prefix joined with their path below the walk root; absolute entries are
// matched as they are.
type DoubleAsteriskScan struct {
	walk    *RecursiveScan
	pattern *glob.Pattern
	prefix  string

	index   int
	value   string
	started bool
	done    bool
}

// NewDoubleAsteriskScan filters walk by pattern.
func NewDoubleAsteriskScan(walk *RecursiveScan, pattern *glob.Pattern, prefix string) *DoubleAsteriskScan {
	return &DoubleAsteriskScan{walk: walk, pattern: pattern, prefix: prefix}
}

func (d *DoubleAsteriskScan) Reset() {
	if d.started {
		d.walk.Reset()
	}
	d.started, d.done, d.index = false, false, 0
}

func (d *DoubleAsteriskScan) Next() bool {
	if d.done {
		return false
	}
	d.started = true
	for d.walk.Next() {
		subject := d.walk.Value()
		if d.walk.opts.PathType == Relative {
			subject = filepath.Join(d.prefix, d.walk.Relative())
		}
		if !d.pattern.Match(subject) {
			continue
		}
		d.value = d.walk.Value()
		d.walk.Context().SetIndex(d.index)
		d.index++
		return true
	}
	d.done = true
	return false
}

func (d *DoubleAsteriskScan) Value() string               { return d.value }
func (d *DoubleAsteriskScan) Context() *candidate.Context { return d.walk.Context() }
