package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/sotd-matcher/internal/catalog"
	"github.com/jonesrussell/sotd-matcher/internal/config"
	"github.com/jonesrussell/sotd-matcher/internal/correctmatch"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog and correct-match files",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithDefaults[config.Config](configPath, func(c *config.Config) { c.SetDefaults() })
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cat, err := catalog.Load(cfg.Catalogs.Dir)
	if err != nil {
		return err
	}

	overrides, err := correctmatch.Load(cfg.Catalogs.CorrectMatches, cat)
	if err != nil {
		return err
	}

	stats := cat.Stats()
	sections := make([]string, 0, len(stats))
	for name := range stats {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	fmt.Println("catalogs OK")
	for _, name := range sections {
		fmt.Printf("  %-20s %d entries\n", name, stats[name])
	}
	fmt.Printf("  %-20s %d entries\n", "correct_matches", overrides.Size())
	return nil
}
