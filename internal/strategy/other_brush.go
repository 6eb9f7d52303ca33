package strategy

import "github.com/jonesrussell/sotd-matcher/internal/catalog"

// otherBrushStrategy is the generic catch-all over the low-trust
// other_brushes section: brand-level patterns whose model and attributes
// mostly come from the user's own text.
type otherBrushStrategy struct {
	cat *catalog.Index
}

func newOtherBrushStrategy(cat *catalog.Index) *otherBrushStrategy {
	return &otherBrushStrategy{cat: cat}
}

func (s *otherBrushStrategy) Name() string { return "other_brush" }

func (s *otherBrushStrategy) Claim(input string) *Candidate {
	hit, ok := s.cat.MatchBrushSection(catalog.SectionOtherBrushes, input)
	if !ok {
		return nil
	}
	return entryCandidate(hit, s.Name(), RankOtherBrush)
}
