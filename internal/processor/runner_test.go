package processor_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonesrussell/sotd-matcher/internal/config"
	"github.com/jonesrussell/sotd-matcher/internal/database"
	"github.com/jonesrussell/sotd-matcher/internal/domain"
	"github.com/jonesrussell/sotd-matcher/internal/processor"
)

func newRunner(t *testing.T) (*processor.MonthRunner, *database.CandidatesRepository, *database.ResultsRepository) {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver: "sqlite3",
		Path:   filepath.Join(t.TempDir(), "runner.db"),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("schema: %v", err)
	}

	candidates := database.NewCandidatesRepository(db)
	results := database.NewResultsRepository(db)
	batch := processor.NewBatchProcessor(newTestEngine(t), nil, nil, 2, nopLogger{})
	runner := processor.NewMonthRunner(candidates, results, batch, 2, nopLogger{})
	return runner, candidates, results
}

func seedCandidates(t *testing.T, repo *database.CandidatesRepository, month string, texts []string) {
	t.Helper()
	now := time.Now().UTC()
	for i, text := range texts {
		c := &domain.RawCandidate{
			ID:        month + "-" + string(rune('a'+i)),
			Month:     month,
			Field:     domain.FieldTypeBrush,
			Text:      text,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Insert(context.Background(), c); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestMonthRunner_RunMonth(t *testing.T) {
	t.Helper()

	runner, candidates, results := newRunner(t)
	ctx := context.Background()

	seedCandidates(t, candidates, "2025-05", []string{
		"Simpson Chubby 2",
		"Zenith B35 boar",
		"custom boar",
	})

	summary, err := runner.RunMonth(ctx, "2025-05")
	if err != nil {
		t.Fatalf("run month: %v", err)
	}
	if summary.Total != 3 {
		t.Errorf("total = %d, want 3", summary.Total)
	}
	if summary.ByKind[domain.MatchPattern] != 2 {
		t.Errorf("pattern count = %d, want 2", summary.ByKind[domain.MatchPattern])
	}
	if summary.ByKind[domain.MatchUnmatched] != 1 {
		t.Errorf("unmatched count = %d, want 1", summary.ByKind[domain.MatchUnmatched])
	}

	counts, err := results.CountByKind(ctx, "2025-05")
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total != 3 {
		t.Errorf("persisted records = %d, want 3", total)
	}
}

func TestMonthRunner_RerunReplacesResults(t *testing.T) {
	t.Helper()

	runner, candidates, results := newRunner(t)
	ctx := context.Background()

	seedCandidates(t, candidates, "2025-05", []string{"Simpson Chubby 2"})

	for i := 0; i < 2; i++ {
		if _, err := runner.RunMonth(ctx, "2025-05"); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	counts, err := results.CountByKind(ctx, "2025-05")
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total != 1 {
		t.Errorf("records after rerun = %d, want 1 (replaced, not appended)", total)
	}
}

func TestMonthRunner_RunRange(t *testing.T) {
	t.Helper()

	runner, candidates, _ := newRunner(t)
	ctx := context.Background()

	seedCandidates(t, candidates, "2025-04", []string{"Zenith B8"})
	seedCandidates(t, candidates, "2025-05", []string{"Simpson Chubby 2"})
	seedCandidates(t, candidates, "2025-07", []string{"custom boar"})

	summaries, err := runner.RunRange(ctx, "2025-04", "2025-05")
	if err != nil {
		t.Fatalf("run range: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].Month != "2025-04" || summaries[1].Month != "2025-05" {
		t.Errorf("months = %s, %s", summaries[0].Month, summaries[1].Month)
	}
}
