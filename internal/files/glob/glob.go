// Package glob implements the wildcard matcher used by path scans.
//
// A pattern is made of literal text, path separators, single asterisks
// that match any run of characters inside one path segment, and at most one
// double asterisk that matches zero or more whole segments. Matching is
// case-insensitive and both '/' and '\' count as separators.
package glob

import (
	"strings"
	"unicode"
)

type tokenKind uint8

const (
	tokLiteral tokenKind = iota
	tokSeparator
	tokStar
	tokDoubleStar
)

type token struct {
	kind tokenKind
	r    rune
}

// Pattern is a compiled wildcard pattern. It is not safe for concurrent use
// because matching reuses an internal table.
type Pattern struct {
	source       string
	toks         []token
	minLength    int
	recursive    bool
	specialStart bool
	wildcard     bool
	table        [][]bool
}

const forbidden = `<>|?"`

// Compile parses a pattern. Backslashes are read as separators, repeated
// separators collapse and a trailing separator is dropped. Runs of three or
// more asterisks count as one double asterisk.
func Compile(pattern string) (*Pattern, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, newPatternError(pattern, -1, "pattern is empty", "")
	}

	p := &Pattern{source: pattern}
	runes := []rune(pattern)
	offset := 0
	doubleAt := -1

	for i := 0; i < len(runes); {
		r := runes[i]
		width := len(string(r))

		switch {
		case isSeparator(r):
			if n := len(p.toks); n == 0 || p.toks[n-1].kind != tokSeparator {
				p.toks = append(p.toks, token{kind: tokSeparator, r: '/'})
			}
			i++
		case r == '*':
			j := i
			for j < len(runes) && runes[j] == '*' {
				j++
			}
			p.wildcard = true
			if j-i == 1 {
				p.toks = append(p.toks, token{kind: tokStar})
			} else {
				if doubleAt >= 0 {
					return nil, newPatternError(pattern, offset, "pattern contains more than one '**'",
						"Use a single '**' and single '*' wildcards for the other segments")
				}
				doubleAt = offset
				p.recursive = true
				p.toks = append(p.toks, token{kind: tokDoubleStar})
			}
			offset += j - i
			i = j
			continue
		case strings.ContainsRune(forbidden, r):
			return nil, newPatternError(pattern, offset, "character "+string(r)+" is not allowed", "")
		default:
			p.toks = append(p.toks, token{kind: tokLiteral, r: unicode.ToLower(r)})
			i++
		}
		offset += width
	}

	if n := len(p.toks); n > 1 && p.toks[n-1].kind == tokSeparator {
		p.toks = p.toks[:n-1]
	}

	p.specialStart = len(p.toks) >= 2 && p.toks[0].kind == tokDoubleStar && p.toks[1].kind == tokSeparator
	p.minLength = p.computeMinLength()
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// A separator next to '**' may be absorbed when '**' matches nothing,
// so it is not counted towards the minimum length.
func (p *Pattern) computeMinLength() int {
	n := 0
	for i, t := range p.toks {
		switch t.kind {
		case tokLiteral:
			n++
		case tokSeparator:
			if (i > 0 && p.toks[i-1].kind == tokDoubleStar) ||
				(i+1 < len(p.toks) && p.toks[i+1].kind == tokDoubleStar) {
				continue
			}
			n++
		}
	}
	return n
}

// String returns the pattern as written.
func (p *Pattern) String() string { return p.source }

// Recursive reports whether the pattern contains '**'.
func (p *Pattern) Recursive() bool { return p.recursive }

// HasWildcard reports whether the pattern contains any asterisk.
func (p *Pattern) HasWildcard() bool { return p.wildcard }

// MinLength is the fewest characters a matching value can have.
func (p *Pattern) MinLength() int { return p.minLength }

// MatchesAll reports whether the pattern is a lone '*'.
func (p *Pattern) MatchesAll() bool {
	return len(p.toks) == 1 && p.toks[0].kind == tokStar
}

// Match reports whether value matches the whole pattern.
func (p *Pattern) Match(value string) bool {
	v := []rune(value)
	if len(v) < p.minLength {
		return false
	}
	for i, r := range v {
		if isSeparator(r) {
			v[i] = '/'
		} else {
			v[i] = unicode.ToLower(r)
		}
	}

	n, m := len(v), len(p.toks)
	p.resetTable(n, m)
	t := p.table

	for i := 0; i <= n; i++ {
		for j := 0; j <= m; j++ {
			t[i][j] = p.step(t, v, i, j)
		}
	}
	return t[n][m]
}

// step computes whether the first i runes of v match the first j tokens.
func (p *Pattern) step(t [][]bool, v []rune, i, j int) bool {
	if j == 0 {
		return i == 0
	}
	if i == 0 && j == 2 && p.specialStart {
		return true
	}

	tok := p.toks[j-1]
	switch tok.kind {
	case tokStar:
		return t[i][j-1] || (i > 0 && v[i-1] != '/' && t[i-1][j])
	case tokDoubleStar:
		if t[i][j-1] || (i > 0 && t[i-1][j]) {
			return true
		}
		// "/**/" may collapse to "/"
		return j >= 2 && p.toks[j-2].kind == tokSeparator &&
			j < len(p.toks) && p.toks[j].kind == tokSeparator && t[i][j-2]
	default:
		return i > 0 && v[i-1] == tok.r && t[i-1][j-1]
	}
}

func (p *Pattern) resetTable(n, m int) {
	if len(p.table) < n+1 {
		p.table = make([][]bool, n+1)
	}
	p.table = p.table[:n+1]
	for i := range p.table {
		if cap(p.table[i]) < m+1 {
			p.table[i] = make([]bool, m+1)
		}
		p.table[i] = p.table[i][:m+1]
	}
}

// ContainsWildcard reports whether s has an asterisk.
func ContainsWildcard(s string) bool {
	return strings.ContainsRune(s, '*')
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
