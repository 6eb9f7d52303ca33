package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/sotd-matcher/internal/database"
	"github.com/jonesrussell/sotd-matcher/internal/logging"
	"github.com/jonesrussell/sotd-matcher/internal/processor"
)

var (
	matchMonth string
	matchRange string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Reprocess stored candidates for one or more months",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchMonth, "month", "", "month to process (YYYY-MM)")
	matchCmd.Flags().StringVar(&matchRange, "range", "", "month range to process (YYYY-MM:YYYY-MM)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	if matchMonth == "" && matchRange == "" {
		return fmt.Errorf("one of --month or --range is required")
	}
	if matchMonth != "" && matchRange != "" {
		return fmt.Errorf("--month and --range are mutually exclusive")
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if err := database.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	log := logging.NewAdapter(rt.log)
	limiter := processor.NewRateLimiter(rt.cfg.Service.RateLimitRPS, rt.cfg.Service.RateLimitRPS, log)
	batch := processor.NewBatchProcessor(rt.engine, limiter, rt.tel, rt.cfg.Service.Concurrency, log)
	runner := processor.NewMonthRunner(
		database.NewCandidatesRepository(db),
		database.NewResultsRepository(db),
		batch, rt.cfg.Service.BatchSize, log)

	var summaries []*processor.Summary
	if matchMonth != "" {
		summary, runErr := runner.RunMonth(ctx, matchMonth)
		if runErr != nil {
			return runErr
		}
		summaries = append(summaries, summary)
	} else {
		from, to, splitErr := splitRange(matchRange)
		if splitErr != nil {
			return splitErr
		}
		summaries, err = runner.RunRange(ctx, from, to)
		if err != nil {
			return err
		}
	}

	for _, s := range summaries {
		printSummary(s)
	}
	return nil
}

func splitRange(r string) (string, string, error) {
	from, to, ok := strings.Cut(r, ":")
	if !ok || from == "" || to == "" {
		return "", "", fmt.Errorf("invalid range %q, expected YYYY-MM:YYYY-MM", r)
	}
	return from, to, nil
}

func printSummary(s *processor.Summary) {
	fmt.Printf("%s: %d candidates\n", s.Month, s.Total)
	for kind, n := range s.ByKind {
		fmt.Printf("  %-18s %d\n", kind, n)
	}
}
