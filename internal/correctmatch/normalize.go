// Package correctmatch loads the human-curated override index. A hit in this
// index always outranks automatic inference.
package correctmatch

import (
	"regexp"
	"strings"
)

// Noise stripped before lookup. The same patterns run at index construction
// and at lookup time; if the two ever diverge, entries silently stop
// matching.
var noisePatterns = []*regexp.Regexp{
	// usage counters: "(23)", "(x4)", "[12]", "{3}"
	regexp.MustCompile(`(?i)[([{]\s*x?\d+x?\s*[)\]}]`),
	// competition tags: "$CULT", "$OSS"
	regexp.MustCompile(`\$\w+`),
	// sample and trial markers
	regexp.MustCompile(`(?i)[([{]\s*(?:sample|tester|trial|test)\s*[)\]}]`),
}

// Normalize strips known noise tokens and collapses whitespace. It preserves
// case and is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	for _, re := range noisePatterns {
		s = re.ReplaceAllString(s, " ")
	}
	return strings.Join(strings.Fields(s), " ")
}

// key is the lookup key for a normalized string. Lookup is exact but
// case-insensitive.
func key(s string) string {
	return strings.ToLower(Normalize(s))
}
