// Package processor fans candidate strings out over a worker pool. The
// engine is stateless per call and shared read-only, so workers need no
// coordination beyond fan-out/fan-in.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
	"github.com/jonesrussell/sotd-matcher/internal/matcher"
	"github.com/jonesrussell/sotd-matcher/internal/telemetry"
)

const defaultConcurrency = 8

// Logger defines the logging interface the processor needs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Result pairs one candidate with its match outcome.
type Result struct {
	Candidate *domain.RawCandidate
	Match     *domain.MatchResult
	Record    *domain.MatchRecord
}

// BatchProcessor classifies batches of candidates in parallel.
type BatchProcessor struct {
	engine      *matcher.Engine
	limiter     *RateLimiter
	tel         *telemetry.Provider
	concurrency int
	logger      Logger
}

// NewBatchProcessor creates a batch processor around a constructed engine.
func NewBatchProcessor(engine *matcher.Engine, limiter *RateLimiter, tel *telemetry.Provider, concurrency int, logger Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &BatchProcessor{
		engine:      engine,
		limiter:     limiter,
		tel:         tel,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Process classifies every candidate and returns one result per input.
// Individual unmatched inputs are normal outcomes, never batch failures.
func (b *BatchProcessor) Process(ctx context.Context, candidates []*domain.RawCandidate) []*Result {
	if len(candidates) == 0 {
		return nil
	}

	b.logger.Info("starting batch",
		"batch_size", len(candidates),
		"concurrency", b.concurrency,
	)
	start := time.Now()

	jobs := make(chan *domain.RawCandidate, len(candidates))
	out := make(chan *Result, len(candidates))

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go b.worker(ctx, jobs, out, &wg)
	}

	for _, c := range candidates {
		jobs <- c
	}
	close(jobs)

	wg.Wait()
	close(out)

	results := make([]*Result, 0, len(candidates))
	kinds := make(map[string]int)
	for r := range out {
		results = append(results, r)
		kinds[r.Match.MatchKind]++
	}

	duration := time.Since(start)
	b.tel.RecordBatch(len(candidates), duration, len(candidates)-len(results))
	b.logger.Info("batch complete",
		"batch_size", len(candidates),
		"duration_ms", duration.Milliseconds(),
		"kinds", kinds,
	)

	return results
}

func (b *BatchProcessor) worker(ctx context.Context, jobs <-chan *domain.RawCandidate, out chan<- *Result, wg *sync.WaitGroup) {
	defer wg.Done()

	for c := range jobs {
		if b.limiter != nil {
			if err := b.limiter.Wait(ctx); err != nil {
				b.logger.Warn("dropping remaining work", "error", err)
				return
			}
		}

		match := b.engine.Match(ctx, c.Text)
		out <- &Result{
			Candidate: c,
			Match:     match,
			Record:    buildRecord(c, match),
		}
	}
}

// buildRecord flattens a MatchResult into its audit row.
func buildRecord(c *domain.RawCandidate, m *domain.MatchResult) *domain.MatchRecord {
	rec := &domain.MatchRecord{
		ID:          uuid.NewString(),
		CandidateID: c.ID,
		Month:       c.Month,
		Input:       c.Text,
		Brand:       m.Brand,
		Model:       m.Model,
		MatchKind:   m.MatchKind,
		Pattern:     m.Pattern,
		Strategy:    m.Strategy,
		MatchedAt:   time.Now().UTC(),
	}

	if m.Handle != nil {
		rec.HandleBrand = m.Handle.Brand
		rec.HandleModel = m.Handle.Model
	}
	if m.Knot != nil {
		rec.KnotBrand = m.Knot.Brand
		rec.KnotModel = m.Knot.Model
	}
	if f, ok := m.Field(domain.FieldFiber); ok {
		rec.Fiber = f.Value
	}
	if f, ok := m.Field(domain.FieldKnotMM); ok {
		rec.KnotMM = f.Value
	}

	return rec
}
