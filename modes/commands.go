// Package modes holds the window and form content registered into the
// engine's factories: the main menu, travel, the store and river
// crossings. The engine never imports this package; it sees only the
// capability interfaces.
package modes

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandDef struct {
	canonical string
	aliases   []string
}

type phrase struct {
	canonical string
	alias     string
}

// matcher resolves typed input to a canonical command. Exact and alias
// hits first, then a levenshtein pass so "contnue" still travels; a
// near miss outside the distance limit yields a suggestion instead.
type matcher struct {
	phrases []phrase
}

func newMatcher(defs ...commandDef) *matcher {
	m := &matcher{}
	for _, d := range defs {
		canonical := normalize(d.canonical)
		if canonical == "" {
			continue
		}
		m.phrases = append(m.phrases, phrase{canonical: canonical, alias: canonical})
		for _, a := range d.aliases {
			if n := normalize(a); n != "" {
				m.phrases = append(m.phrases, phrase{canonical: canonical, alias: n})
			}
		}
	}
	return m
}

func normalize(in string) string {
	return strings.ToLower(strings.TrimSpace(in))
}

// Match returns the canonical command for the input, if any
func (m *matcher) Match(input string) (string, bool) {
	in := normalize(input)
	if in == "" {
		return "", false
	}

	for _, p := range m.phrases {
		if in == p.alias {
			return p.canonical, true
		}
	}

	best, dist := m.closest(in)
	if best != "" && dist <= fuzzyLimit(len(in)) {
		return best, true
	}
	return "", false
}

// Suggest returns the nearest canonical command for a miss, or ""
func (m *matcher) Suggest(input string) string {
	in := normalize(input)
	if len(in) < 3 {
		return ""
	}
	best, dist := m.closest(in)
	if dist <= fuzzyLimit(len(in))+1 {
		return best
	}
	return ""
}

func (m *matcher) closest(in string) (string, int) {
	best := ""
	bestDist := -1
	for _, p := range m.phrases {
		d := levenshtein.ComputeDistance(in, p.alias)
		if bestDist < 0 || d < bestDist || (d == bestDist && p.canonical < best) {
			best = p.canonical
			bestDist = d
		}
	}
	return best, bestDist
}

func fuzzyLimit(length int) int {
	switch {
	case length < 3:
		return 0
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
