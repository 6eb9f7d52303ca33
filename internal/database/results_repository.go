package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
)

// ResultsRepository persists match records for audit and downstream
// aggregation.
type ResultsRepository struct {
	db *sqlx.DB
}

// NewResultsRepository creates a new results repository.
func NewResultsRepository(db *sqlx.DB) *ResultsRepository {
	return &ResultsRepository{db: db}
}

// DeleteByMonth clears previous results for a month before reprocessing.
func (r *ResultsRepository) DeleteByMonth(ctx context.Context, month string) error {
	query := r.db.Rebind(`DELETE FROM match_records WHERE month = ?`)
	if _, err := r.db.ExecContext(ctx, query, month); err != nil {
		return fmt.Errorf("delete match records for %s: %w", month, err)
	}
	return nil
}

// SaveBatch inserts a batch of match records in one transaction.
func (r *ResultsRepository) SaveBatch(ctx context.Context, records []*domain.MatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.Rebind(`
		INSERT INTO match_records (
			id, candidate_id, month, input, brand, model,
			handle_brand, handle_model, knot_brand, knot_model,
			fiber, knot_mm, match_kind, pattern, strategy, matched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	for _, rec := range records {
		if _, err := tx.ExecContext(ctx, query,
			rec.ID, rec.CandidateID, rec.Month, rec.Input, rec.Brand, rec.Model,
			rec.HandleBrand, rec.HandleModel, rec.KnotBrand, rec.KnotModel,
			rec.Fiber, rec.KnotMM, rec.MatchKind, rec.Pattern, rec.Strategy, rec.MatchedAt,
		); err != nil {
			return fmt.Errorf("insert match record %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save batch: %w", err)
	}
	return nil
}

// KindCount is one row of the per-kind summary.
type KindCount struct {
	MatchKind string `db:"match_kind" json:"match_kind"`
	Count     int    `db:"count"      json:"count"`
}

// CountByKind summarizes a month's results per match kind.
func (r *ResultsRepository) CountByKind(ctx context.Context, month string) ([]KindCount, error) {
	var counts []KindCount
	query := r.db.Rebind(`
		SELECT match_kind, COUNT(*) AS count
		FROM match_records
		WHERE month = ?
		GROUP BY match_kind
		ORDER BY match_kind
	`)

	if err := r.db.SelectContext(ctx, &counts, query, month); err != nil {
		return nil, fmt.Errorf("count match records for %s: %w", month, err)
	}
	return counts, nil
}
