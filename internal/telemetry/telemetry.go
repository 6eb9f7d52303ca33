// Package telemetry provides Prometheus metrics and an OpenTelemetry tracer
// for the matcher service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "sotd-matcher"

// Metrics holds all matcher Prometheus metrics.
type Metrics struct {
	// Dispatch metrics
	MatchesTotal  *prometheus.CounterVec // by match kind
	DispatchState *prometheus.CounterVec // terminal state per input
	MatchDuration prometheus.Histogram

	// Field resolution metrics
	FieldConflicts prometheus.Counter

	// Batch metrics
	BatchSize        prometheus.Histogram
	BatchDuration    prometheus.Histogram
	CandidatesFailed prometheus.Counter
}

// Provider wraps the tracer and metrics handles.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// RecordMatch records one dispatch outcome.
func (p *Provider) RecordMatch(ctx context.Context, duration time.Duration, kind, state string) {
	if p == nil {
		return
	}
	p.Metrics.MatchesTotal.WithLabelValues(kind).Inc()
	p.Metrics.DispatchState.WithLabelValues(state).Inc()
	p.Metrics.MatchDuration.Observe(duration.Seconds())
}

// RecordConflict counts a catalog/user field conflict.
func (p *Provider) RecordConflict() {
	if p == nil {
		return
	}
	p.Metrics.FieldConflicts.Inc()
}

// RecordBatch records one processed batch.
func (p *Provider) RecordBatch(size int, duration time.Duration, failed int) {
	if p == nil {
		return
	}
	p.Metrics.BatchSize.Observe(float64(size))
	p.Metrics.BatchDuration.Observe(duration.Seconds())
	p.Metrics.CandidatesFailed.Add(float64(failed))
}

// StartSpan starts a dispatch span, or returns the context unchanged when
// the provider is nil.
func (p *Provider) StartSpan(ctx context.Context, name, input string) (context.Context, trace.Span) {
	if p == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return p.Tracer.Start(ctx, name, trace.WithAttributes(attribute.String("input", input)))
}

func initMetrics() *Metrics {
	return &Metrics{
		MatchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "matcher_matches_total",
			Help: "Total inputs matched, by match kind (exact, pattern, strategy_fallback, unmatched)",
		}, []string{"kind"}),
		DispatchState: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "matcher_dispatch_state_total",
			Help: "Terminal dispatcher state per input (s0_correct_match through unmatched)",
		}, []string{"state"}),
		MatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "matcher_match_duration_seconds",
			Help:    "Duration of one dispatch call",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		FieldConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "matcher_field_conflicts_total",
			Help: "Fields where a user value conflicted with authoritative catalog data",
		}),
		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "matcher_batch_size",
			Help:    "Candidates per processed batch",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		BatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "matcher_batch_duration_seconds",
			Help:    "Duration of one batch",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		CandidatesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "matcher_candidates_failed_total",
			Help: "Candidates that could not be persisted or processed",
		}),
	}
}
