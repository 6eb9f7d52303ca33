package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/sotd-matcher/internal/catalog"
	"github.com/jonesrussell/sotd-matcher/internal/config"
	"github.com/jonesrussell/sotd-matcher/internal/correctmatch"
	"github.com/jonesrussell/sotd-matcher/internal/logger"
	"github.com/jonesrussell/sotd-matcher/internal/matcher"
	"github.com/jonesrussell/sotd-matcher/internal/telemetry"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "matcher",
	Short: "sotd-matcher - shave product matching engine",
	Long:  "Classifies free-text product mentions into normalized catalog entries.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "path to config file")
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
}

// runtime bundles the components every subcommand needs.
type runtime struct {
	cfg       *config.Config
	log       logger.Logger
	tel       *telemetry.Provider
	catalogs  *catalog.Index
	overrides *correctmatch.Index
	engine    *matcher.Engine
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadWithDefaults[config.Config](configPath, func(c *config.Config) { c.SetDefaults() })
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cat, err := catalog.Load(cfg.Catalogs.Dir)
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}

	overrides, err := correctmatch.Load(cfg.Catalogs.CorrectMatches, cat)
	if err != nil {
		return nil, fmt.Errorf("load correct matches: %w", err)
	}

	tel := telemetry.NewProvider()
	engine := matcher.New(cat, overrides, log, tel)

	log.Info("matcher initialized",
		logger.String("catalog_dir", cfg.Catalogs.Dir),
		logger.String("correct_matches", cfg.Catalogs.CorrectMatches))

	return &runtime{
		cfg:       cfg,
		log:       log,
		tel:       tel,
		catalogs:  cat,
		overrides: overrides,
		engine:    engine,
	}, nil
}
