package strategy

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
)

const declarationBrand = "Declaration Grooming"

// Declaration Grooming batch codes run B1 through B18 (plus the lettered
// B9A/B9B revisions). A bare batch code defaults to Declaration Grooming
// unless the text names a competing maker.
const (
	dgMinBatch = 1
	dgMaxBatch = 18
)

var (
	dgBatchRe    = regexp.MustCompile(`(?i)\b[bB](\d{1,2})([aAbB])?\b`)
	dgExplicitRe = regexp.MustCompile(`(?i)\b(?:declaration(?:\s+grooming)?|dgc?)\b`)
)

// Makers whose presence means a bare B-code is theirs, not Declaration's.
var dgCompetingMakers = []string{
	"zenith", "omega", "semogue", "simpson", "maggard", "oumo",
	"ap shave", "apshave", "turn n shave", "tns", "wald",
}

type declarationGroomingStrategy struct{}

func newDeclarationGroomingStrategy() *declarationGroomingStrategy {
	return &declarationGroomingStrategy{}
}

func (s *declarationGroomingStrategy) Name() string { return "declaration_grooming" }

func (s *declarationGroomingStrategy) Claim(input string) *Candidate {
	m := dgBatchRe.FindStringSubmatch(input)
	if m == nil {
		return nil
	}

	batch, err := strconv.Atoi(m[1])
	if err != nil || batch < dgMinBatch || batch > dgMaxBatch {
		return nil
	}

	explicit := dgExplicitRe.MatchString(input)
	if !explicit && s.hasCompetingMaker(input) {
		return nil
	}

	model := "B" + m[1] + strings.ToUpper(m[2])
	return &Candidate{
		Brand:    declarationBrand,
		Model:    model,
		Pattern:  dgBatchRe.String(),
		Strategy: s.Name(),
		Rank:     RankDeclarationGrooming,
		Defaults: map[string]string{"fiber": domain.FiberBadger},
	}
}

func (s *declarationGroomingStrategy) hasCompetingMaker(input string) bool {
	lower := strings.ToLower(input)
	for _, maker := range dgCompetingMakers {
		if strings.Contains(lower, maker) {
			return true
		}
	}
	return false
}
