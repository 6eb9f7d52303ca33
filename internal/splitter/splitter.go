// Package splitter decomposes compound brush strings into handle and knot
// components. Split points are found by delimiter priority and the two sides
// are assigned roles by a signed heuristic score.
package splitter

import (
	"strings"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
)

// Delimiter classes, in priority order.
const (
	ClassHighPriority = "high_priority"
	ClassNeutral      = "neutral"
	ClassHeuristic    = "heuristic"
)

// Split is one candidate decomposition with roles already assigned: Handle
// holds the handle-like (primary) text, Knot the knot-like (secondary) text.
type Split struct {
	Handle    string
	Knot      string
	Delimiter string
	Class     string
	// Order records which role appeared first in the original text.
	Order string
}

// High-priority delimiters explicitly indicate a two-part brush. Which side
// is the handle is still decided by scoring: community convention writes
// both "handle w/ knot" and "knot w/ handle".
var highPriorityDelimiters = []string{" w/ ", " with "}

// Role-neutral delimiters. "x" needs context guards (see nonDelimiter).
var neutralDelimiters = []string{" / ", " - ", " x "}

// Splitter finds split candidates and scores components. Immutable after
// construction.
type Splitter struct {
	scorer *Scorer
}

// New creates a Splitter around the given component scorer.
func New(scorer *Scorer) *Splitter {
	return &Splitter{scorer: scorer}
}

// Scorer exposes the underlying component scorer.
func (s *Splitter) Scorer() *Scorer {
	return s.scorer
}

// FindSplits returns all candidate splits ordered by delimiter priority:
// high-priority delimiters first, then neutral ones left to right.
func (s *Splitter) FindSplits(input string) []Split {
	var splits []Split
	splits = append(splits, s.splitsFor(input, highPriorityDelimiters, ClassHighPriority)...)
	splits = append(splits, s.splitsFor(input, neutralDelimiters, ClassNeutral)...)
	return splits
}

// HighPrioritySplits returns only the explicit-delimiter splits (dispatcher
// stage S2).
func (s *Splitter) HighPrioritySplits(input string) []Split {
	return s.splitsFor(input, highPriorityDelimiters, ClassHighPriority)
}

// NeutralSplits returns only the role-neutral delimiter splits (stage S4).
func (s *Splitter) NeutralSplits(input string) []Split {
	return s.splitsFor(input, neutralDelimiters, ClassNeutral)
}

func (s *Splitter) splitsFor(input string, delimiters []string, class string) []Split {
	var splits []Split
	lower := strings.ToLower(input)

	for _, delim := range delimiters {
		from := 0
		for {
			idx := strings.Index(lower[from:], delim)
			if idx < 0 {
				break
			}
			idx += from
			from = idx + len(delim)

			left := strings.TrimSpace(input[:idx])
			right := strings.TrimSpace(input[idx+len(delim):])
			if left == "" || right == "" {
				continue
			}
			if s.nonDelimiter(delim, left, right) {
				continue
			}

			splits = append(splits, s.assignRoles(left, right, delim, class))
		}
	}

	return splits
}

// assignRoles scores both sides as handle-like and gives the handle role to
// the higher score. Ties go to the first-appearing component.
func (s *Splitter) assignRoles(left, right, delim, class string) Split {
	split := Split{Delimiter: strings.TrimSpace(delim), Class: class}

	if s.scorer.ScoreAsHandle(left) >= s.scorer.ScoreAsHandle(right) {
		split.Handle, split.Knot = left, right
		split.Order = domain.OrderHandlePrimary
	} else {
		split.Handle, split.Knot = right, left
		split.Order = domain.OrderKnotPrimary
	}

	return split
}

// nonDelimiter excludes tokens that share surface form with a delimiter but
// are not split points: "x" as size multiplication ("28mm x 52mm") and "x"
// as a brand collaboration marker ("Declaration x Chisel & Hound").
// Detection is by surrounding context, never the token alone.
func (s *Splitter) nonDelimiter(delim, left, right string) bool {
	if strings.TrimSpace(delim) != "x" {
		return false
	}
	if isSizeContext(left, right) {
		return true
	}
	return s.scorer.IsBrandContext(left, right)
}

// isSizeContext reports whether the tokens around an "x" are measurements,
// as in "28mm x 52mm" or "26 x 52 mm".
func isSizeContext(left, right string) bool {
	return endsWithMeasurement(left) && startsWithMeasurement(right)
}

func endsWithMeasurement(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	return isMeasurementToken(fields[len(fields)-1])
}

func startsWithMeasurement(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	return isMeasurementToken(fields[0])
}

// isMeasurementToken accepts "28", "28mm", "52.5mm".
func isMeasurementToken(tok string) bool {
	tok = strings.TrimSuffix(strings.ToLower(tok), "mm")
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
