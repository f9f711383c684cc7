package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"liquidityMath/internal/config"
	"liquidityMath/internal/eval"
	"liquidityMath/internal/storage"
	"liquidityMath/internal/storage/postgres"
)

func runEval(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadEval(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Input == "" {
		return fmt.Errorf("input path is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sinks := storage.Multi{storage.NewJsonlStorage(cfg.Out)}
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		sinks = append(sinks, store)
	}

	runner := eval.NewRunner(eval.RunConfig{
		Input:     cfg.Input,
		BatchSize: cfg.BatchSize,
	}, sinks, logger)

	logger.Info("eval start",
		zap.String("in", cfg.Input),
		zap.String("out", cfg.Out),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		zap.Int("batch_size", cfg.BatchSize),
	)

	return runner.Run(ctx)
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
