package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tidy/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent organize runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			effectiveLimit := limit
			if effectiveLimit <= 0 {
				effectiveLimit = cfg.History.Limit
			}
			records, err := store.Recent(cmd.Context(), effectiveLimit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					shortRunID(rec.RunID),
					rec.StartedAt.Local().Format(time.DateTime),
					rec.Source,
					rec.Strategy,
					yesNo(rec.Preview),
					strconv.Itoa(rec.Moved),
					strconv.Itoa(rec.Skipped),
					strconv.Itoa(rec.Errored),
				})
			}
			headers := []string{"Run", "Started", "Source", "Strategy", "Preview", "Moved", "Skipped", "Errored"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, 5, 6, 7))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of runs to show (default from config)")
	return cmd
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
