package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/sotd-matcher/internal/api"
	"github.com/jonesrussell/sotd-matcher/internal/database"
	"github.com/jonesrussell/sotd-matcher/internal/logger"
	"github.com/jonesrussell/sotd-matcher/internal/logging"
)

const shutdownTimeout = 15 * time.Second

var serveWithoutDB bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the matching API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveWithoutDB, "no-db", false, "serve without a candidate database")
}

func runServe(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	var results *database.ResultsRepository
	if !serveWithoutDB {
		db, dbErr := database.Connect(rt.cfg.Database)
		if dbErr != nil {
			return fmt.Errorf("connect database: %w", dbErr)
		}
		defer db.Close()
		if schemaErr := database.EnsureSchema(cmd.Context(), db); schemaErr != nil {
			return fmt.Errorf("ensure schema: %w", schemaErr)
		}
		results = database.NewResultsRepository(db)
	}

	handler := api.NewHandler(rt.engine, rt.overrides, results, logging.NewAdapter(rt.log))
	server := api.NewServer(handler, rt.cfg, rt.tel)

	errCh := make(chan error, 1)
	go func() {
		if serveErr := server.Run(); serveErr != nil {
			errCh <- serveErr
		}
	}()
	rt.log.Info("server started", logger.Int("port", rt.cfg.Service.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err = <-errCh:
		return err
	case sig := <-sigCh:
		rt.log.Info("shutting down", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
