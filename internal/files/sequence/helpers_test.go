package sequence

import (
	"strconv"

	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/internal/files/filesystem"
)

// trackingSeq wraps a sequence and counts calls.
type trackingSeq struct {
	Sequence
	resets int
	nexts  int
}

func (t *trackingSeq) Reset() {
	t.resets++
	t.Sequence.Reset()
}

func (t *trackingSeq) Next() bool {
	t.nexts++
	return t.Sequence.Next()
}

func newTestFS() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/base")
	mfs.AddFile("a.txt", "1234567890")
	mfs.AddFile("b.txt", "1234567890")
	mfs.AddFile("c.txt", "12345")
	mfs.AddFile("d.log", "1")
	mfs.AddFile("e.log", "")
	mfs.AddFile("sub/x.txt", "xx")
	return mfs
}

func newCtx() *candidate.Context {
	return candidate.New(newTestFS(), "/base")
}

func letters(ctx *candidate.Context) Sequence {
	return Values(ctx, "a.txt", "b.txt", "c.txt", "d.log", "e.log")
}

// trace records value and index of every candidate of a full pass.
func trace(seq Sequence) []string {
	var out []string
	for seq.Next() {
		out = append(out, seq.Value()+"#"+strconv.Itoa(seq.Context().Index()))
	}
	return out
}
