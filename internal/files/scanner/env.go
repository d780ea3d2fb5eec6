package scanner

import (
	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/internal/files/filesystem"
	"github.com/vvka-141/pathseq/internal/logging"
	"github.com/vvka-141/pathseq/internal/runctl"
	"github.com/vvka-141/pathseq/pkg/pathseq"
)

// Kind selects which directory entries a scan emits.
type Kind int

const (
	Files Kind = iota
	Directories
	All
)

func (k Kind) String() string {
	switch k {
	case Files:
		return "files"
	case Directories:
		return "directories"
	default:
		return "all"
	}
}

func (k Kind) wantsFiles() bool { return k != Directories }
func (k Kind) wantsDirs() bool  { return k != Files }

// PathType selects the form of emitted values.
type PathType int

const (
	// Relative values are relative to the context location.
	Relative PathType = iota
	// Absolute values are full paths.
	Absolute
)

// Source produces the directory a scan lists. It is evaluated again on
// every pass so a scan can follow a changing location.
type Source func() string

// Fixed returns a Source that always yields dir.
func Fixed(dir string) Source {
	return func() string { return dir }
}

// Env is the shared environment of all scans within one run.
type Env struct {
	FS       filesystem.FileSystemProvider
	Run      *runctl.State
	Flags    pathseq.Flags
	Logger   pathseq.Logger
	Location string
}

// NewEnv creates a scan environment resolving relative patterns against location.
// A nil logger discards messages.
// Panics if fs or run is nil.
func NewEnv(fs filesystem.FileSystemProvider, run *runctl.State, flags pathseq.Flags, logger pathseq.Logger, location string) *Env {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if run == nil {
		panic("run cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Env{
		FS:       fs,
		Run:      run,
		Flags:    flags,
		Logger:   logger,
		Location: location,
	}
}

// NewContext creates a candidate context resolving against the environment location.
func (e *Env) NewContext() *candidate.Context {
	return candidate.New(e.FS, e.Location)
}

func (e *Env) absorb(dir string, err error) {
	e.Logger.Verbose("[%s] skipping %s: %v", e.Run.ID(), dir, err)
}
