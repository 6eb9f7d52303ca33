// Package matcher orchestrates the classification pipeline. The dispatcher
// runs a fixed sequence of stages; exactly one stage produces the returned
// result and the order is never violated, even when a later stage "looks
// obviously right". That ordering is the primary correctness contract of
// the engine.
package matcher

import (
	"context"
	"strings"
	"time"

	"github.com/jonesrussell/sotd-matcher/internal/catalog"
	"github.com/jonesrussell/sotd-matcher/internal/correctmatch"
	"github.com/jonesrussell/sotd-matcher/internal/domain"
	"github.com/jonesrussell/sotd-matcher/internal/logger"
	"github.com/jonesrussell/sotd-matcher/internal/resolve"
	"github.com/jonesrussell/sotd-matcher/internal/splitter"
	"github.com/jonesrussell/sotd-matcher/internal/strategy"
	"github.com/jonesrussell/sotd-matcher/internal/telemetry"
)

// Dispatcher state identifiers, in execution order.
const (
	stateS0CorrectMatch   = "s0_correct_match"
	stateS1CuratedSplit   = "s1_curated_split"
	stateS2EarlySplit     = "s2_early_split"
	stateS3FullStrategy   = "s3_full_strategy"
	stateS4LateSplit      = "s4_late_split"
	stateS5DualFallback   = "s5_dual_fallback"
	stateS6SingleFallback = "s6_single_fallback"
	stateUnmatched        = "unmatched"
)

// Engine is the constructed matching engine. After construction it is
// immutable and safe for arbitrarily many concurrent Match calls; all data
// is in memory and no call blocks on I/O.
type Engine struct {
	cat       *catalog.Index
	overrides *correctmatch.Index
	registry  *strategy.Registry
	splitter  *splitter.Splitter
	tel       *telemetry.Provider
	log       logger.Logger
}

// New wires the engine from its immutable inputs. Construction is the only
// mutation boundary: catalogs and overrides must already be loaded and
// validated.
func New(cat *catalog.Index, overrides *correctmatch.Index, log logger.Logger, tel *telemetry.Provider) *Engine {
	if log == nil {
		log = logger.NewNop()
	}
	registry := strategy.NewRegistry(cat)
	scorer := splitter.NewScorer(cat, registry)

	return &Engine{
		cat:       cat,
		overrides: overrides,
		registry:  registry,
		splitter:  splitter.New(scorer),
		tel:       tel,
		log:       log,
	}
}

// Registry exposes the strategy registry, for the stats endpoint.
func (e *Engine) Registry() *strategy.Registry {
	return e.registry
}

// Catalog exposes the catalog index, for the stats endpoint.
func (e *Engine) Catalog() *catalog.Index {
	return e.cat
}

// Match classifies one candidate string. It never fails: classification
// outcomes, including "nothing matched", are data.
func (e *Engine) Match(ctx context.Context, input string) *domain.MatchResult {
	start := time.Now()
	ctx, span := e.tel.StartSpan(ctx, "matcher.Match", input)
	defer span.End()

	text := correctmatch.Normalize(input)
	result, state := e.dispatch(text)
	result.Input = input
	result.Normalized = text

	e.tel.RecordMatch(ctx, time.Since(start), result.MatchKind, state)
	e.countConflicts(result)

	e.log.Debug("dispatch complete",
		logger.String("input", input),
		logger.String("state", state),
		logger.String("match_kind", result.MatchKind),
		logger.String("brand", result.Brand),
		logger.String("model", result.Model),
	)

	return result
}

// dispatch walks the stages in fixed order.
func (e *Engine) dispatch(text string) (*domain.MatchResult, string) {
	// S0: full-string correct match.
	if r, ok := e.overrides.Lookup(text); ok {
		return e.exactResult(r), stateS0CorrectMatch
	}

	// S1: human-curated split pairs.
	if handleText, knotText, ok := e.overrides.CuratedSplit(text); ok {
		handle := e.resolveHandle(handleText)
		knot := e.resolveKnot(knotText)
		r := e.compositeResult(handle, knot, domain.MatchExact, "curated_split")
		r.ComponentOrder = orderFromPositions(text, handleText, knotText)
		return r, stateS1CuratedSplit
	}

	// S2: high-priority delimiter splits, each component through
	// correct-match lookup before strategy matching.
	if r, ok := e.trySplits(e.splitter.HighPrioritySplits(text)); ok {
		return r, stateS2EarlySplit
	}

	// S3: strategy registry over the whole, unsplit string.
	if cand := e.registry.Classify(text); cand != nil {
		return e.productResult(text, cand), stateS3FullStrategy
	}

	// S4: neutral delimiter splits, same per-component sequence as S2.
	if r, ok := e.trySplits(e.splitter.NeutralSplits(text)); ok {
		return r, stateS4LateSplit
	}

	// S5/S6: fallbacks over the entire unsplit string.
	handle := e.resolveHandle(text)
	knot := e.resolveKnot(text)

	if handle != nil && knot != nil {
		r := e.compositeResult(handle, knot, domain.MatchStrategyFallback, "dual_fallback")
		return r, stateS5DualFallback
	}
	if handle != nil || knot != nil {
		r := e.compositeResult(handle, knot, domain.MatchStrategyFallback, "single_fallback")
		return r, stateS6SingleFallback
	}

	return e.unmatchedResult(text), stateUnmatched
}

// trySplits resolves split candidates in priority order and accepts the
// first one whose components both resolve. A pair curated on both sides is
// an exact match; anything else resolves per component.
func (e *Engine) trySplits(splits []splitter.Split) (*domain.MatchResult, bool) {
	for _, sp := range splits {
		if h, k, ok := e.overrides.LookupSplit(sp.Handle, sp.Knot); ok {
			r := e.compositeResult(curatedComponent(h), curatedComponent(k), domain.MatchExact, "split")
			r.ComponentOrder = sp.Order
			return r, true
		}

		handle := e.resolveHandle(sp.Handle)
		knot := e.resolveKnot(sp.Knot)
		if handle == nil || knot == nil {
			continue
		}

		r := e.compositeResult(handle, knot, domain.MatchPattern, "split")
		r.ComponentOrder = sp.Order
		return r, true
	}
	return nil, false
}

// resolveHandle resolves one component in the handle role: curated override
// first, then the handle reference catalog.
func (e *Engine) resolveHandle(text string) *domain.BrushComponent {
	if r, ok := e.overrides.LookupHandle(text); ok {
		return curatedComponent(r)
	}

	if hit, ok := e.cat.MatchHandle(text); ok {
		return &domain.BrushComponent{
			Brand:    hit.Entry.Brand,
			Model:    hit.Entry.Model,
			Strategy: "handle_catalog",
			Pattern:  hit.Pattern,
		}
	}

	return nil
}

// resolveKnot resolves one component in the knot role: curated override
// first, then the strategy registry.
func (e *Engine) resolveKnot(text string) *domain.BrushComponent {
	if r, ok := e.overrides.LookupKnot(text); ok {
		return curatedComponent(r)
	}

	if cand := e.registry.Classify(text); cand != nil {
		return &domain.BrushComponent{
			Brand:    cand.Brand,
			Model:    cand.Model,
			Fields:   resolve.Fields(text, cand.Authoritative, cand.Defaults),
			Strategy: cand.Strategy,
			Pattern:  cand.Pattern,
		}
	}

	return nil
}

// curatedComponent builds a component from a curated index hit.
func curatedComponent(r *correctmatch.Resolved) *domain.BrushComponent {
	return &domain.BrushComponent{
		Brand:    r.Brand,
		Model:    r.Model,
		Fields:   r.Fields,
		Strategy: "correct_match",
	}
}

// exactResult builds a single-product result from a curated full-brush hit.
func (e *Engine) exactResult(r *correctmatch.Resolved) *domain.MatchResult {
	return &domain.MatchResult{
		Brand:  r.Brand,
		Model:  r.Model,
		Fields: r.Fields,
		Handle: &domain.BrushComponent{Brand: r.Brand},
		Knot: &domain.BrushComponent{
			Brand:  r.Brand,
			Model:  r.Model,
			Fields: r.Fields,
		},
		MatchKind: domain.MatchExact,
		Strategy:  "correct_match",
	}
}

// productResult builds a single-product result from a strategy candidate.
// The primary/secondary components are an informational decomposition of the
// same product, not independent matches.
func (e *Engine) productResult(text string, cand *strategy.Candidate) *domain.MatchResult {
	fields := resolve.Fields(text, cand.Authoritative, cand.Defaults)

	return &domain.MatchResult{
		Brand:  cand.Brand,
		Model:  cand.Model,
		Fields: fields,
		Handle: &domain.BrushComponent{Brand: cand.Brand},
		Knot: &domain.BrushComponent{
			Brand:    cand.Brand,
			Model:    cand.Model,
			Fields:   fields,
			Strategy: cand.Strategy,
			Pattern:  cand.Pattern,
		},
		MatchKind: domain.MatchPattern,
		Pattern:   cand.Pattern,
		Strategy:  cand.Strategy,
	}
}

// compositeResult builds a genuine two-part result: top-level brand/model
// stay empty and the components stand on their own.
func (e *Engine) compositeResult(handle, knot *domain.BrushComponent, kind, strategyName string) *domain.MatchResult {
	r := &domain.MatchResult{
		Handle:         handle,
		Knot:           knot,
		ComponentOrder: domain.OrderHandlePrimary,
		MatchKind:      kind,
		Strategy:       strategyName,
	}
	if knot != nil {
		r.Fields = knot.Fields
		r.Pattern = knot.Pattern
	}
	return r
}

// unmatchedResult emits the terminal stub, carrying any partial signal the
// text still offers. Partial information beats no information.
func (e *Engine) unmatchedResult(text string) *domain.MatchResult {
	r := &domain.MatchResult{MatchKind: domain.MatchUnmatched}

	if fiber := resolve.ParseFiber(text); fiber != "" {
		r.Fields = append(r.Fields, domain.ResolvedField{
			Name: domain.FieldFiber, Value: fiber, Source: domain.SourceUserParsed,
		})
	}
	if mm := resolve.ParseKnotMM(text); mm != "" {
		r.Fields = append(r.Fields, domain.ResolvedField{
			Name: domain.FieldKnotMM, Value: mm, Source: domain.SourceUserParsed,
		})
	}

	return r
}

// countConflicts feeds conflict-tagged fields into telemetry.
func (e *Engine) countConflicts(r *domain.MatchResult) {
	for _, f := range r.Fields {
		if f.Source == domain.SourceConflict {
			e.tel.RecordConflict()
		}
	}
}

// orderFromPositions decides component order for curated splits by where
// each component text sits in the original string.
func orderFromPositions(text, handleText, knotText string) string {
	lower := strings.ToLower(text)
	h := strings.Index(lower, strings.ToLower(handleText))
	k := strings.Index(lower, strings.ToLower(knotText))
	if h >= 0 && k >= 0 && k < h {
		return domain.OrderKnotPrimary
	}
	return domain.OrderHandlePrimary
}
