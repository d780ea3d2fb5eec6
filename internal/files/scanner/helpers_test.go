package scanner

import (
	"fmt"
	"sync"
	"testing"

	"github.com/vvka-141/pathseq/internal/files/filesystem"
	"github.com/vvka-141/pathseq/internal/files/sequence"
	"github.com/vvka-141/pathseq/internal/runctl"
	"github.com/vvka-141/pathseq/pkg/pathseq"
)

// recordingLogger keeps verbose messages for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	verbose []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{})  {}
func (l *recordingLogger) Error(format string, args ...interface{}) {}

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.verbose...)
}

// newProjectFS builds:
//
//	/work/up.txt
//	/work/other/q.txt
//	/work/proj/{a.txt, B.TXT, notes.md, run.peru}
//	/work/proj/.git/config
//	/work/proj/b/c.txt
//	/work/proj/alpha/beta/x.log
//	/work/proj/alpha/bravo/y.log
//	/work/proj/apple/beta/z.log
func newProjectFS() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("up.txt", "up")
	mfs.AddFile("other/q.txt", "q")
	mfs.AddFile("proj/a.txt", "aaa")
	mfs.AddFile("proj/B.TXT", "bb")
	mfs.AddFile("proj/notes.md", "# notes")
	mfs.AddFile("proj/run.peru", "print 1")
	mfs.AddFile("proj/.git/config", "[core]")
	mfs.AddFile("proj/b/c.txt", "c")
	mfs.AddFile("proj/alpha/beta/x.log", "x")
	mfs.AddFile("proj/alpha/bravo/y.log", "y")
	mfs.AddFile("proj/apple/beta/z.log", "z")
	return mfs
}

func newTestEnv(mfs *filesystem.MemoryFileSystem) (*Env, *recordingLogger) {
	logger := &recordingLogger{}
	return NewEnv(mfs, runctl.Background(), pathseq.DefaultFlags(), logger, "/work/proj"), logger
}

func collect(t *testing.T, seq sequence.Sequence) []string {
	t.Helper()
	var out []string
	for seq.Next() {
		out = append(out, seq.Value())
	}
	return out
}
