package splitter

import (
	"regexp"
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/sotd-matcher/internal/catalog"
	"github.com/jonesrussell/sotd-matcher/internal/strategy"
)

// Scoring weights. The score is a signed sum: positive means handle-like,
// negative means knot-like.
const (
	handleVocabWeight   = 10
	handleCatalogWeight = 15
	fiberVocabWeight    = -10
	sizePatternWeight   = -10
	knotStrategyWeight  = -20
)

// Vocabulary that indicates a handle description.
var handleVocab = []string{
	"handle", "custom", "artisan", "resin", "wood", "wooden", "oak",
	"walnut", "olive", "burl", "ebonite", "acrylic", "aluminum", "brass",
	"stabilized", "timascus", "zebra", "galaxy", "swirl", "butterscotch",
}

// Vocabulary that indicates a knot description.
var fiberVocab = []string{
	"badger", "silvertip", "shd", "gelousy", "manchurian", "boar",
	"bristle", "synthetic", "synth", "syn", "tuxedo", "cashmere",
	"quartermoon", "timberwolf", "motherlode", "horse", "fanchurian",
}

var sizeRe = regexp.MustCompile(`(?i)\b\d{2}(?:[.,]\d)?\s*-?\s*mm\b`)

// Scorer computes the handle-likeness of a component. Pure over its inputs:
// component text plus read-only catalog and registry lookups.
type Scorer struct {
	handleMatcher *ahocorasick.Matcher
	handleWords   []string
	fiberMatcher  *ahocorasick.Matcher
	fiberWords    []string

	cat *catalog.Index
	reg *strategy.Registry

	brandWords map[string]bool
}

// NewScorer builds the vocabulary automatons and brand token table once.
func NewScorer(cat *catalog.Index, reg *strategy.Registry) *Scorer {
	return &Scorer{
		handleMatcher: ahocorasick.NewStringMatcher(handleVocab),
		handleWords:   handleVocab,
		fiberMatcher:  ahocorasick.NewStringMatcher(fiberVocab),
		fiberWords:    fiberVocab,
		cat:           cat,
		reg:           reg,
		brandWords:    collectBrandWords(cat),
	}
}

// ScoreAsHandle computes the signed handle score for one component.
// Positive contributions: handle vocabulary hits and a match in the handle
// reference catalog. Negative contributions: fiber vocabulary, an explicit
// size pattern, and a product strategy match (an input that matches a known
// product pattern is knot-like, not handle-like).
func (s *Scorer) ScoreAsHandle(component string) int {
	text := normalizeText(component)
	score := 0

	score += len(uniqueHits(s.handleMatcher, s.handleWords, text)) * handleVocabWeight
	score += len(uniqueHits(s.fiberMatcher, s.fiberWords, text)) * fiberVocabWeight

	if _, ok := s.cat.MatchHandle(component); ok {
		score += handleCatalogWeight
	}
	if sizeRe.MatchString(component) {
		score += sizePatternWeight
	}
	if s.reg.Matches(component) {
		score += knotStrategyWeight
	}

	return score
}

// IsBrandContext reports whether the words immediately around a delimiter
// are both known brand tokens, which marks a collaboration rather than a
// handle/knot split.
func (s *Scorer) IsBrandContext(left, right string) bool {
	leftFields := strings.Fields(strings.ToLower(left))
	rightFields := strings.Fields(strings.ToLower(right))
	if len(leftFields) == 0 || len(rightFields) == 0 {
		return false
	}
	return s.brandWords[leftFields[len(leftFields)-1]] && s.brandWords[rightFields[0]]
}

// uniqueHits runs the automaton and returns the distinct vocabulary words
// found in the text.
func uniqueHits(m *ahocorasick.Matcher, words []string, text string) []string {
	hits := m.Match([]byte(text))
	seen := make(map[int]bool, len(hits))
	var found []string
	for _, idx := range hits {
		if idx >= len(words) || seen[idx] {
			continue
		}
		seen[idx] = true
		found = append(found, words[idx])
	}
	return found
}

// collectBrandWords gathers every word of every catalog brand name.
func collectBrandWords(cat *catalog.Index) map[string]bool {
	words := make(map[string]bool)
	add := func(section *catalog.Section) {
		if section == nil {
			return
		}
		for _, e := range section.Entries {
			for _, w := range strings.Fields(strings.ToLower(e.Brand)) {
				if w != "&" && w != "and" {
					words[w] = true
				}
			}
		}
	}
	add(cat.BrushSection(catalog.SectionKnownBrushes))
	add(cat.BrushSection(catalog.SectionOtherBrushes))
	return words
}

// normalizeText lowercases and replaces non-alphanumerics with spaces so the
// automaton sees clean word boundaries.
func normalizeText(text string) string {
	text = strings.ToLower(text)

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else {
			result.WriteByte(' ')
		}
	}

	return result.String()
}
