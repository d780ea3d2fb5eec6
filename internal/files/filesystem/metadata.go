package filesystem

import (
	"runtime"
	"strings"
	"time"
)

// Attributes is a set of platform file attribute flags.
type Attributes uint8

const (
	AttrHidden Attributes = 1 << iota
	AttrReadOnly
	AttrArchive
	AttrCompressed
	AttrEncrypted
)

// Has reports whether every flag in f is set.
func (a Attributes) Has(f Attributes) bool { return a&f == f }

// Metadata holds the extended properties of a path that fs.FileInfo does not expose portably.
type Metadata struct {
	Access       time.Time
	Creation     time.Time
	Modification time.Time
	Change       time.Time
	Attributes   Attributes
}

// Describe extracts Metadata from info. Providers that already know the
// metadata return a *Metadata from Sys; otherwise the platform stat structure
// is decoded, falling back to the modification time for unknown timestamps.
func Describe(info FileInfo) Metadata {
	if m, ok := info.Sys().(*Metadata); ok && m != nil {
		return *m
	}
	return platformMetadata(info)
}

func baseMetadata(info FileInfo) Metadata {
	mod := info.ModTime()
	m := Metadata{
		Access:       mod,
		Creation:     mod,
		Modification: mod,
		Change:       mod,
	}
	if info.Mode().Perm()&0o200 == 0 {
		m.Attributes |= AttrReadOnly
	}
	if runtime.GOOS != "windows" {
		name := info.Name()
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			m.Attributes |= AttrHidden
		}
	}
	return m
}
