package resolve

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
)

// Fiber vocabulary. Users rarely write the canonical fiber name; these
// patterns cover the common community shorthand.
var fiberPatterns = []struct {
	re    *regexp.Regexp
	fiber string
}{
	{regexp.MustCompile(`(?i)\b(?:mixed|badger\s*(?:/|&)\s*boar|fanchurian)\b`), domain.FiberMixed},
	{regexp.MustCompile(`(?i)\b(?:badger|silvertip|2.?band|3.?band|shd|gelousy|finest|manchurian)\b`), domain.FiberBadger},
	{regexp.MustCompile(`(?i)\b(?:boar|bristle)\b`), domain.FiberBoar},
	{regexp.MustCompile(`(?i)\b(?:synthetic|synth?|syn|tuxedo|cashmere|quartermoon|faux.?horse|g4|timberwolf|motherlode)\b`), domain.FiberSynthetic},
	{regexp.MustCompile(`(?i)\bhorse(?:hair)?\b`), domain.FiberHorse},
}

// knotSizeRe captures a millimetre size like "26mm", "27.5 mm" or "26 mm x 52".
var knotSizeRe = regexp.MustCompile(`(?i)\b(\d{2}(?:[.,]\d)?)\s*-?\s*mm\b`)

// bareKnotSizeRe is a weaker form for sizes written without a unit, limited
// to the plausible knot range so it does not pick up model numbers.
var bareKnotSizeRe = regexp.MustCompile(`\b(2[0-9]|3[0-5])\b`)

// ParseFiber extracts the fiber type written in the user's text, returning
// the canonical fiber name or "".
func ParseFiber(text string) string {
	for _, p := range fiberPatterns {
		if p.re.MatchString(text) {
			return p.fiber
		}
	}
	return ""
}

// CanonicalFiber maps any fiber spelling (canonical or shorthand) onto the
// canonical name. Unknown values pass through lowercased so comparisons stay
// stable.
func CanonicalFiber(s string) string {
	if f := ParseFiber(s); f != "" {
		return f
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseKnotMM extracts an explicit knot size in millimetres from the user's
// text, returning a bare number string ("27", "27.5") or "".
func ParseKnotMM(text string) string {
	if m := knotSizeRe.FindStringSubmatch(text); m != nil {
		return strings.ReplaceAll(m[1], ",", ".")
	}
	return ""
}

// ParseKnotMMLoose also accepts a bare two-digit number in the plausible
// knot range. Used only for components already scored as knot-like.
func ParseKnotMMLoose(text string) string {
	if size := ParseKnotMM(text); size != "" {
		return size
	}
	if m := bareKnotSizeRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
