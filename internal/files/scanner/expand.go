package scanner

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vvka-141/pathseq/internal/files/candidate"
	"github.com/vvka-141/pathseq/internal/files/glob"
	"github.com/vvka-141/pathseq/internal/files/sequence"
)

// unit is one wildcard segment followed by the literal segments after it.
type unit struct {
	name   string
	suffix string
}

// Plan describes how a pattern was decomposed.
type Plan struct {
	Pattern   string
	Absolute  bool
	Retreats  int
	Base      string
	Recursive bool
	Units     int
}

// Expand builds a sequence listing the paths that match pattern. Relative
// patterns resolve against the location of ctx and produce values relative to it;
// absolute patterns produce absolute values. A pattern without a wildcard
// yields the path itself when it exists.
//
// Leading "../" segments move the scan up from the location. A "**" pattern
// is served by one recursive walk filtered by the whole pattern. Otherwise
// every wildcard segment becomes a directory listing nested inside the
// previous one and literal segments are checked for existence.
//
// Returns a *glob.PatternError if the pattern is malformed.
func Expand(env *Env, ctx *candidate.Context, pattern string) (sequence.Sequence, error) {
	seq, _, err := ExpandPlan(env, ctx, pattern)
	return seq, err
}

// ExpandPlan is Expand that also reports the decomposition it chose.
func ExpandPlan(env *Env, ctx *candidate.Context, pattern string) (sequence.Sequence, Plan, error) {
	plan := Plan{Pattern: pattern}
	raw := strings.TrimSpace(pattern)
	if raw == "" {
		return nil, plan, &glob.PatternError{Pattern: pattern, Offset: -1, Message: "pattern is empty"}
	}
	p := strings.ReplaceAll(raw, `\`, "/")

	if !glob.ContainsWildcard(p) {
		exists := func(c *candidate.Context) bool { return c.Exists() }
		return sequence.Where(sequence.Values(ctx, filepath.FromSlash(p)), exists), plan, nil
	}
	if _, err := glob.Compile(p); err != nil {
		return nil, plan, err
	}

	plan.Absolute = strings.HasPrefix(p, "/") || filepath.IsAbs(filepath.FromSlash(p))
	skipped := 0
	if !plan.Absolute {
		for strings.HasPrefix(p, "../") {
			p = strings.TrimLeft(p[3:], "/")
			plan.Retreats++
		}
		skipped = len(raw) - len(p)
	}
	if err := checkDots(pattern, p, skipped); err != nil {
		return nil, plan, err
	}

	pathType := Relative
	if plan.Absolute {
		pathType = Absolute
	}
	retreats := plan.Retreats
	retreat := strings.TrimSuffix(strings.Repeat(".."+string(filepath.Separator), retreats), string(filepath.Separator))

	baseRel, rest := doublestar.SplitPattern(p)
	if baseRel == "." {
		baseRel = ""
	}
	segments := splitSegments(rest)
	// a meta character the matcher reads literally may have split early
	for len(segments) > 0 && !glob.ContainsWildcard(segments[0]) {
		baseRel = path.Join(baseRel, segments[0])
		segments = segments[1:]
	}
	plan.Base = baseRel

	var base Source
	prefix := ""
	if plan.Absolute {
		base = Fixed(filepath.FromSlash(baseRel))
	} else {
		rel := filepath.FromSlash(baseRel)
		base = func() string {
			loc := ctx.Location()
			for i := 0; i < retreats; i++ {
				loc = filepath.Dir(loc)
			}
			return filepath.Join(loc, rel)
		}
		prefix = filepath.Join(retreat, rel)
	}

	if strings.Contains(rest, "**") {
		plan.Recursive = true
		walk, err := NewRecursiveScan(env, ctx, base, Options{Kind: All, PathType: pathType, Prefix: prefix})
		if err != nil {
			return nil, plan, err
		}
		if len(segments) == 1 && strings.Trim(segments[0], "*") == "" {
			return walk, plan, nil
		}
		full := path.Join(baseRel, strings.Join(segments, "/"))
		compiled, err := glob.Compile(full)
		if err != nil {
			return nil, plan, err
		}
		subject := ""
		if !plan.Absolute {
			subject = filepath.FromSlash(baseRel)
		}
		return NewDoubleAsteriskScan(walk, compiled, subject), plan, nil
	}

	units := toUnits(segments)
	plan.Units = len(units)
	seq, err := buildUnits(env, ctx, base, prefix, pathType, units)
	return seq, plan, err
}

func buildUnits(env *Env, ctx *candidate.Context, base Source, prefix string, pathType PathType, units []unit) (sequence.Sequence, error) {
	var seq sequence.Sequence
	for i, u := range units {
		last := i == len(units)-1
		kind := Directories
		if last && u.suffix == "" {
			kind = All
		}

		scanCtx, src := ctx, base
		opts := Options{Kind: kind, Pattern: u.name, PathType: pathType, Prefix: prefix}
		var vessel *sequence.Vessel
		if i > 0 {
			vessel = sequence.NewVessel("")
			scanCtx = candidate.New(env.FS, "")
			src = vessel.Location
			opts = Options{Kind: kind, Pattern: u.name, PathType: pathType, Anchored: true}
		}

		scan, err := NewDirectoryScan(env, scanCtx, src, opts)
		if err != nil {
			return nil, err
		}
		var s sequence.Sequence = scan
		if u.suffix != "" {
			s = sequence.Suffix(s, filepath.FromSlash(u.suffix), last)
		}
		if i == 0 {
			seq = s
		} else {
			seq = sequence.Nested(seq, vessel, s, pathType == Absolute)
		}
	}
	return seq, nil
}

func splitSegments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toUnits(segments []string) []unit {
	var units []unit
	for _, s := range segments {
		if glob.ContainsWildcard(s) || len(units) == 0 {
			units = append(units, unit{name: s})
			continue
		}
		last := &units[len(units)-1]
		last.suffix = path.Join(last.suffix, s)
	}
	return units
}

// checkDots rejects "." and ".." segments other than leading retreats.
func checkDots(pattern, p string, skipped int) error {
	offset := 0
	for _, s := range strings.Split(p, "/") {
		if s == "." || s == ".." {
			return &glob.PatternError{
				Pattern: pattern,
				Offset:  skipped + offset,
				Message: "'" + s + "' is only allowed as a leading '../' segment",
				Hint:    "Move every '../' to the start of the pattern",
			}
		}
		offset += len(s) + 1
	}
	return nil
}
