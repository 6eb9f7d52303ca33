package strategy

import "github.com/jonesrussell/sotd-matcher/internal/catalog"

// knownBrushStrategy matches exact catalog products from the high-trust
// known_brushes section.
type knownBrushStrategy struct {
	cat *catalog.Index
}

func newKnownBrushStrategy(cat *catalog.Index) *knownBrushStrategy {
	return &knownBrushStrategy{cat: cat}
}

func (s *knownBrushStrategy) Name() string { return "known_brush" }

func (s *knownBrushStrategy) Claim(input string) *Candidate {
	hit, ok := s.cat.MatchBrushSection(catalog.SectionKnownBrushes, input)
	if !ok {
		return nil
	}
	return entryCandidate(hit, s.Name(), RankKnownBrush)
}
