package strategy

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
)

const zenithBrand = "Zenith"

// Zenith brushes are boar unless the text says otherwise. The brand default
// loses to an explicit user-written fiber during field resolution.
var (
	zenithRe      = regexp.MustCompile(`(?i)\bzenith\b`)
	zenithModelRe = regexp.MustCompile(`\b([A-Z]{1,2}\d{1,3}[A-Z]?)\b`)
)

type zenithStrategy struct{}

func newZenithStrategy() *zenithStrategy {
	return &zenithStrategy{}
}

func (s *zenithStrategy) Name() string { return "zenith" }

func (s *zenithStrategy) Claim(input string) *Candidate {
	if !zenithRe.MatchString(input) {
		return nil
	}

	model := ""
	if m := zenithModelRe.FindStringSubmatch(input); m != nil {
		model = strings.ToUpper(m[1])
	}

	return &Candidate{
		Brand:    zenithBrand,
		Model:    model,
		Pattern:  zenithRe.String(),
		Strategy: s.Name(),
		Rank:     RankZenith,
		Defaults: map[string]string{"fiber": domain.FiberBoar},
	}
}
