package sequence

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vvka-141/pathseq/internal/files/attr"
	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/pkg/pathseq"
)

// Kind is the type of an order key.
type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindTime
	KindPeriod
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	case KindPeriod:
		return "period"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keyValue is an evaluated key; only the field matching the key kind is set.
type keyValue struct {
	b bool
	n float64
	t time.Time
	d time.Duration
	s string
}

// Key is one element of an order spec.
type Key struct {
	Kind       Kind
	Descending bool
	// Mask lists the attributes the selector reads.
	Mask attr.Mask
	eval func(*candidate.Context) keyValue
}

// BoolKey orders false before true.
func BoolKey(sel func(*candidate.Context) bool, desc bool) Key {
	return Key{Kind: KindBool, Descending: desc, eval: func(c *candidate.Context) keyValue {
		return keyValue{b: sel(c)}
	}}
}

// NumberKey orders numerically.
func NumberKey(sel func(*candidate.Context) float64, desc bool) Key {
	return Key{Kind: KindNumber, Descending: desc, eval: func(c *candidate.Context) keyValue {
		return keyValue{n: sel(c)}
	}}
}

// TimeKey orders chronologically.
func TimeKey(sel func(*candidate.Context) time.Time, desc bool) Key {
	return Key{Kind: KindTime, Descending: desc, eval: func(c *candidate.Context) keyValue {
		return keyValue{t: sel(c)}
	}}
}

// PeriodKey orders by duration.
func PeriodKey(sel func(*candidate.Context) time.Duration, desc bool) Key {
	return Key{Kind: KindPeriod, Descending: desc, eval: func(c *candidate.Context) keyValue {
		return keyValue{d: sel(c)}
	}}
}

// StringKey orders case-insensitively, breaking ties by exact comparison.
func StringKey(sel func(*candidate.Context) string, desc bool) Key {
	return Key{Kind: KindString, Descending: desc, eval: func(c *candidate.Context) keyValue {
		return keyValue{s: sel(c)}
	}}
}

func compareOrdered[T ~int64 | ~float64 | ~string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compare returns -1, 0 or 1 taking direction into account.
func (k Key) compare(a, b keyValue) int {
	var c int
	switch k.Kind {
	case KindBool:
		switch {
		case a.b == b.b:
			c = 0
		case !a.b:
			c = -1
		default:
			c = 1
		}
	case KindNumber:
		c = compareOrdered(a.n, b.n)
	case KindTime:
		c = a.t.Compare(b.t)
	case KindPeriod:
		c = compareOrdered(a.d, b.d)
	case KindString:
		c = compareOrdered(strings.ToLower(a.s), strings.ToLower(b.s))
		if c == 0 {
			c = compareOrdered(a.s, b.s)
		}
	}
	if k.Descending {
		c = -c
	}
	return c
}

var namedKeys = map[string]func(desc bool) Key{
	"name":         func(d bool) Key { return StringKey((*candidate.Context).Name, d) },
	"fullname":     func(d bool) Key { return StringKey((*candidate.Context).FullName, d) },
	"extension":    func(d bool) Key { return StringKey((*candidate.Context).Extension, d) },
	"path":         func(d bool) Key { return StringKey((*candidate.Context).Path, d) },
	"parent":       func(d bool) Key { return StringKey((*candidate.Context).Parent, d) },
	"drive":        func(d bool) Key { return StringKey((*candidate.Context).Drive, d) },
	"size":         func(d bool) Key { return NumberKey(sizeOf, d) },
	"depth":        func(d bool) Key { return NumberKey(depthOf, d) },
	"access":       func(d bool) Key { return TimeKey((*candidate.Context).Access, d) },
	"creation":     func(d bool) Key { return TimeKey((*candidate.Context).Creation, d) },
	"modification": func(d bool) Key { return TimeKey((*candidate.Context).Modification, d) },
	"change":       func(d bool) Key { return TimeKey((*candidate.Context).Change, d) },
	"lifetime":     func(d bool) Key { return PeriodKey((*candidate.Context).Lifetime, d) },
	"exists":       func(d bool) Key { return BoolKey((*candidate.Context).Exists, d) },
	"isfile":       func(d bool) Key { return BoolKey((*candidate.Context).IsFile, d) },
	"isdirectory":  func(d bool) Key { return BoolKey((*candidate.Context).IsDirectory, d) },
	"hidden":       func(d bool) Key { return BoolKey((*candidate.Context).Hidden, d) },
	"readonly":     func(d bool) Key { return BoolKey((*candidate.Context).ReadOnly, d) },
	"archive":      func(d bool) Key { return BoolKey((*candidate.Context).Archive, d) },
	"compressed":   func(d bool) Key { return BoolKey((*candidate.Context).Compressed, d) },
	"encrypted":    func(d bool) Key { return BoolKey((*candidate.Context).Encrypted, d) },
	"empty":        func(d bool) Key { return BoolKey((*candidate.Context).Empty, d) },
}

func sizeOf(c *candidate.Context) float64  { return float64(c.Size()) }
func depthOf(c *candidate.Context) float64 { return float64(c.Depth()) }

// KeyNames returns the attribute names accepted by KeyFor, sorted.
func KeyNames() []string {
	names := make([]string, 0, len(namedKeys))
	for n := range namedKeys {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// KeyFor builds a key over a named attribute such as "size" or "name".
func KeyFor(name string, desc bool) (Key, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	build, ok := namedKeys[lower]
	if !ok {
		return Key{}, fmt.Errorf("%q: %w", name, pathseq.ErrInvalidOrderKey)
	}
	k := build(desc)
	if m, ok := attr.ParseName(lower); ok {
		k.Mask = m
	}
	return k, nil
}

// ParseOrderSpec parses a comma separated list of attribute names. A name
// prefixed with '-' or suffixed with ":desc" sorts descending; ":asc" is accepted.
func ParseOrderSpec(spec string) ([]Key, error) {
	var keys []Key
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := false
		if strings.HasPrefix(part, "-") {
			desc, part = true, part[1:]
		}
		if name, dir, ok := strings.Cut(part, ":"); ok {
			switch strings.ToLower(dir) {
			case "desc":
				desc = true
			case "asc":
			default:
				return nil, fmt.Errorf("direction %q of %q: %w", dir, name, pathseq.ErrInvalidOrderKey)
			}
			part = name
		}
		k, err := KeyFor(part, desc)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("empty order spec: %w", pathseq.ErrInvalidOrderKey)
	}
	return keys, nil
}
