// Package strategy implements the ordered registry of brand and family
// classification strategies. The registry is a closed list: adding a brand
// means adding a strategy type and a registry entry, never subclassing.
package strategy

import (
	"github.com/jonesrussell/sotd-matcher/internal/catalog"
)

// Strategy priority ranks, most specific first. Lower rank wins.
const (
	RankKnownBrush = iota
	RankDeclarationGrooming
	RankChiselAndHound
	RankZenith
	RankOtherBrush
)

// Candidate is one attempt to classify a string. Created and discarded
// within a single dispatch call.
type Candidate struct {
	// Entry is the matched catalog entry, nil for strategies that resolve
	// without one.
	Entry *catalog.Entry

	Brand string
	Model string

	// Pattern is the literal pattern that matched, for provenance.
	Pattern string
	// Strategy identifies the producing strategy.
	Strategy string
	// Rank is the priority of the producing strategy.
	Rank int

	// Authoritative attribute values that must not be overridden by user
	// text, and defaults that apply only when nothing else does.
	Authoritative map[string]string
	Defaults      map[string]string
}

// Strategy is one self-contained rule set that claims or declines an input.
// Claim must be side-effect free and must return nil, not an error, on
// non-matching input.
type Strategy interface {
	Name() string
	Claim(input string) *Candidate
}

// Registry is the fixed-order strategy list. Built once, immutable, safe for
// concurrent use.
type Registry struct {
	strategies []Strategy
}

// NewRegistry builds the registry in its fixed priority order.
func NewRegistry(cat *catalog.Index) *Registry {
	return &Registry{
		strategies: []Strategy{
			newKnownBrushStrategy(cat),
			newDeclarationGroomingStrategy(),
			newChiselAndHoundStrategy(),
			newZenithStrategy(),
			newOtherBrushStrategy(cat),
		},
	}
}

// Classify tries each strategy in priority order and returns the first
// claim, or nil when no strategy claims the input.
func (r *Registry) Classify(input string) *Candidate {
	for _, s := range r.strategies {
		if c := s.Claim(input); c != nil {
			return c
		}
	}
	return nil
}

// Matches reports whether any strategy claims the input. Used as a negative
// handle signal by the component scorer: a string that matches a known
// product pattern is knot-like.
func (r *Registry) Matches(input string) bool {
	return r.Classify(input) != nil
}

// Names lists the registered strategies in priority order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name()
	}
	return names
}

func entryCandidate(hit *catalog.Hit, strategyName string, rank int) *Candidate {
	return &Candidate{
		Entry:         hit.Entry,
		Brand:         hit.Entry.Brand,
		Model:         hit.Entry.Model,
		Pattern:       hit.Pattern,
		Strategy:      strategyName,
		Rank:          rank,
		Authoritative: hit.Entry.Authoritative,
		Defaults:      hit.Entry.Defaults,
	}
}
