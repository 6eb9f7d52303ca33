package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
)

// CandidatesRepository reads and writes the candidate strings produced by
// the upstream extraction stage.
type CandidatesRepository struct {
	db *sqlx.DB
}

// NewCandidatesRepository creates a new candidates repository.
func NewCandidatesRepository(db *sqlx.DB) *CandidatesRepository {
	return &CandidatesRepository{db: db}
}

// Insert stores one candidate.
func (r *CandidatesRepository) Insert(ctx context.Context, c *domain.RawCandidate) error {
	query := r.db.Rebind(`
		INSERT INTO candidates (id, month, field, author, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Month, c.Field, c.Author, c.Text, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// ListByMonth returns all candidates of one product field for a month.
func (r *CandidatesRepository) ListByMonth(ctx context.Context, month, field string) ([]*domain.RawCandidate, error) {
	var candidates []*domain.RawCandidate
	query := r.db.Rebind(`
		SELECT id, month, field, author, text, created_at
		FROM candidates
		WHERE month = ? AND field = ?
		ORDER BY created_at, id
	`)

	if err := r.db.SelectContext(ctx, &candidates, query, month, field); err != nil {
		return nil, fmt.Errorf("list candidates for %s/%s: %w", month, field, err)
	}
	return candidates, nil
}

// ListByRange returns all candidates of one product field for an inclusive
// month range.
func (r *CandidatesRepository) ListByRange(ctx context.Context, from, to, field string) ([]*domain.RawCandidate, error) {
	var candidates []*domain.RawCandidate
	query := r.db.Rebind(`
		SELECT id, month, field, author, text, created_at
		FROM candidates
		WHERE month >= ? AND month <= ? AND field = ?
		ORDER BY month, created_at, id
	`)

	if err := r.db.SelectContext(ctx, &candidates, query, from, to, field); err != nil {
		return nil, fmt.Errorf("list candidates for %s..%s/%s: %w", from, to, field, err)
	}
	return candidates, nil
}

// Months lists the distinct months present in the store.
func (r *CandidatesRepository) Months(ctx context.Context) ([]string, error) {
	var months []string
	if err := r.db.SelectContext(ctx, &months, `SELECT DISTINCT month FROM candidates ORDER BY month`); err != nil {
		return nil, fmt.Errorf("list months: %w", err)
	}
	return months, nil
}
