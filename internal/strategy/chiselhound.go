package strategy

import (
	"regexp"
	"strconv"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
)

const chiselAndHoundBrand = "Chisel & Hound"

// Chisel & Hound knots are versioned v10 through v27 inclusive. A version
// token outside that range is declined even though the surface pattern
// matches; the input then falls through to a lower-priority strategy.
const (
	chMinVersion = 10
	chMaxVersion = 27
)

var chVersionRe = regexp.MustCompile(`(?i)\b(?:chisel\s*(?:&|and|\+)\s*hound|chis\w*\s*hound|c&h|ch)\b.*?\bv\s*(\d{1,3})\b`)

type chiselAndHoundStrategy struct{}

func newChiselAndHoundStrategy() *chiselAndHoundStrategy {
	return &chiselAndHoundStrategy{}
}

func (s *chiselAndHoundStrategy) Name() string { return "chisel_and_hound" }

func (s *chiselAndHoundStrategy) Claim(input string) *Candidate {
	m := chVersionRe.FindStringSubmatch(input)
	if m == nil {
		return nil
	}

	version, err := strconv.Atoi(m[1])
	if err != nil || version < chMinVersion || version > chMaxVersion {
		return nil
	}

	return &Candidate{
		Brand:    chiselAndHoundBrand,
		Model:    "v" + strconv.Itoa(version),
		Pattern:  chVersionRe.String(),
		Strategy: s.Name(),
		Rank:     RankChiselAndHound,
		Defaults: map[string]string{"fiber": domain.FiberBadger},
	}
}
