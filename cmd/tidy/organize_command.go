package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tidy/internal/category"
	"tidy/internal/dupes"
	"tidy/internal/history"
	"tidy/internal/logging"
	"tidy/internal/organize"
	"tidy/internal/runlock"
	"tidy/internal/services"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var destination string
	var preview bool
	var includeDate bool
	var strategyFlag string

	cmd := &cobra.Command{
		Use:   "organize <source>",
		Short: "Move files from a source directory into category folders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			strategyValue := strategyFlag
			if strategyValue == "" {
				strategyValue = cfg.Organize.DuplicateStrategy
			}
			strategy, err := dupes.ParseStrategy(strategyValue)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "organizing", "parse strategy", "", err)
			}

			if !cmd.Flags().Changed("date") {
				includeDate = cfg.Organize.IncludeDate
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}

			table, err := category.NewTable(cfg.Categories)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "organizing", "build category table", "", err)
			}

			request := organize.Request{
				Source:      args[0],
				Destination: destination,
				Preview:     preview,
				IncludeDate: includeDate,
				Strategy:    strategy,
			}

			// Preview never mutates anything, so it may run alongside a
			// real run without holding the lock.
			if !preview {
				lockTarget := destination
				if lockTarget == "" {
					lockTarget = args[0]
				}
				lock := runlock.New(cfg.Paths.StateDir, lockTarget)
				if err := lock.Acquire(); err != nil {
					return err
				}
				defer func() {
					if releaseErr := lock.Release(); releaseErr != nil {
						logger.Warn("failed to release run lock", logging.Error(releaseErr))
					}
				}()
			}

			runID := uuid.NewString()
			runCtx := services.WithRunID(cmd.Context(), runID)

			started := time.Now()
			stats, err := organize.New(table, cfg.Organize.Exclude, logger).Run(runCtx, request)
			elapsed := time.Since(started)
			if err != nil {
				return err
			}

			if cfg.History.Enabled {
				recordRun(logger, cfg.HistoryDBPath(), history.Record{
					RunID:       runID,
					Source:      request.Source,
					Destination: request.Destination,
					Preview:     preview,
					Strategy:    string(strategy),
					StartedAt:   started,
					Duration:    elapsed,
					Moved:       stats.Moved,
					Skipped:     stats.Skipped,
					Errored:     stats.Errored,
					Categories:  stats.Categories,
				})
			}

			renderSummary(cmd.OutOrStdout(), stats, table.Names(), elapsed, preview)
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination directory (default: the source directory)")
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "Report intended actions without moving anything")
	cmd.Flags().BoolVar(&includeDate, "date", false, "Partition categories into YYYY-MM subfolders by modification time")
	cmd.Flags().StringVar(&strategyFlag, "duplicates", "", "Duplicate strategy: rename, skip, or replace (default: rename)")

	return cmd
}

// recordRun persists the run summary on a best-effort basis. History is
// bookkeeping; a failure here must not fail an organize run that already
// moved files.
func recordRun(logger *slog.Logger, dbPath string, rec history.Record) {
	store, err := history.Open(dbPath)
	if err != nil {
		logger.Warn("cannot open history store", logging.Args(logging.Error(err))...)
		return
	}
	defer store.Close()
	if err := store.RecordRun(context.Background(), rec); err != nil {
		logger.Warn("cannot record run history", logging.Args(logging.Error(err))...)
	}
}
