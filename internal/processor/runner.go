package processor

import (
	"context"
	"fmt"

	"github.com/jonesrussell/sotd-matcher/internal/database"
	"github.com/jonesrussell/sotd-matcher/internal/domain"
)

// MonthRunner reprocesses all stored candidates for a month or range,
// replacing prior results.
type MonthRunner struct {
	candidates *database.CandidatesRepository
	results    *database.ResultsRepository
	batch      *BatchProcessor
	batchSize  int
	logger     Logger
}

// Summary reports one month's run.
type Summary struct {
	Month  string         `json:"month"`
	Total  int            `json:"total"`
	ByKind map[string]int `json:"by_kind"`
}

// NewMonthRunner creates a month runner.
func NewMonthRunner(candidates *database.CandidatesRepository, results *database.ResultsRepository,
	batch *BatchProcessor, batchSize int, logger Logger,
) *MonthRunner {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &MonthRunner{
		candidates: candidates,
		results:    results,
		batch:      batch,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// RunMonth reprocesses one month of brush candidates.
func (r *MonthRunner) RunMonth(ctx context.Context, month string) (*Summary, error) {
	candidates, err := r.candidates.ListByMonth(ctx, month, domain.FieldTypeBrush)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	if err := r.results.DeleteByMonth(ctx, month); err != nil {
		return nil, fmt.Errorf("clear previous results: %w", err)
	}

	summary := &Summary{Month: month, ByKind: make(map[string]int)}
	for start := 0; start < len(candidates); start += r.batchSize {
		end := min(start+r.batchSize, len(candidates))

		results := r.batch.Process(ctx, candidates[start:end])
		records := make([]*domain.MatchRecord, 0, len(results))
		for _, res := range results {
			records = append(records, res.Record)
			summary.ByKind[res.Match.MatchKind]++
		}
		summary.Total += len(results)

		if err := r.results.SaveBatch(ctx, records); err != nil {
			return nil, fmt.Errorf("save results: %w", err)
		}
	}

	r.logger.Info("month processed",
		"month", month,
		"total", summary.Total,
		"by_kind", summary.ByKind,
	)
	return summary, nil
}

// RunRange reprocesses an inclusive month range, month by month.
func (r *MonthRunner) RunRange(ctx context.Context, from, to string) ([]*Summary, error) {
	months, err := r.candidates.Months(ctx)
	if err != nil {
		return nil, fmt.Errorf("list months: %w", err)
	}

	var summaries []*Summary
	for _, month := range months {
		if month < from || month > to {
			continue
		}
		s, err := r.RunMonth(ctx, month)
		if err != nil {
			return nil, fmt.Errorf("process %s: %w", month, err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
