// Package attr defines the attribute request mask: the set of file
// properties some part of an expression needs for each candidate path.
package attr

import (
	"sort"
	"strings"
)

// Mask is a set of file properties. It only grows while an expression is bound.
type Mask uint32

const (
	Exists Mask = 1 << iota
	IsFile
	IsDirectory
	Path
	FullName
	Name
	Parent
	Extension
	Drive
	Size
	Access
	Creation
	Modification
	Change
	Hidden
	ReadOnly
	Archive
	Compressed
	Encrypted
	Empty
	Lifetime

	None Mask = 0
)

// Presets used when the attribute needs of a command are not known in advance.
const (
	Core = Exists | Path | FullName
	Time = Core | Access | Creation | Modification | Change
)

// Flags that need a stat call. Everything else is derived from the path string.
const Stat = Exists | IsFile | IsDirectory | Size | Access | Creation | Modification |
	Change | Hidden | ReadOnly | Archive | Compressed | Encrypted | Empty | Lifetime

var names = map[string]Mask{
	"exists":       Exists,
	"isfile":       IsFile,
	"isdirectory":  IsDirectory,
	"path":         Path,
	"fullname":     FullName,
	"name":         Name,
	"parent":       Parent,
	"extension":    Extension,
	"drive":        Drive,
	"size":         Size,
	"access":       Access,
	"creation":     Creation,
	"modification": Modification,
	"change":       Change,
	"hidden":       Hidden,
	"readonly":     ReadOnly,
	"archive":      Archive,
	"compressed":   Compressed,
	"encrypted":    Encrypted,
	"empty":        Empty,
	"lifetime":     Lifetime,
}

// implied lists what computing a property requires.
var implied = map[Mask]Mask{
	Size:     Exists | IsFile | IsDirectory,
	Empty:    Exists | IsFile | IsDirectory,
	Lifetime: Exists | Creation | Modification,
}

// Union returns m with every flag of o added.
func (m Mask) Union(o Mask) Mask { return m | o }

// Has reports whether every flag of o is in m.
func (m Mask) Has(o Mask) bool { return m&o == o }

// HasAny reports whether m and o share a flag.
func (m Mask) HasAny(o Mask) bool { return m&o != 0 }

// Expand adds the properties that the flags in m depend on.
func (m Mask) Expand() Mask {
	for flag, deps := range implied {
		if m&flag != 0 {
			m |= deps
		}
	}
	return m
}

// ParseName looks up a property by name, case-insensitively, and returns it
// together with the properties it depends on.
func ParseName(name string) (Mask, bool) {
	m, ok := names[strings.ToLower(name)]
	if !ok {
		return None, false
	}
	return m.Expand(), true
}

// Names returns every known property name in sorted order.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (m Mask) String() string {
	if m == None {
		return "none"
	}
	var parts []string
	for _, n := range Names() {
		if m&names[n] != 0 {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "|")
}
