package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tidy/internal/category"
	"tidy/internal/services"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the active classification table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, err := category.NewTable(cfg.Categories)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "categories", "build category table", "", err)
			}

			var rows [][]string
			for _, cat := range table.Categories() {
				extensions := strings.Join(cat.Extensions, ", ")
				if extensions == "" {
					extensions = "(catch-all)"
				}
				rows = append(rows, []string{cat.Name, extensions})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Category", "Extensions"}, rows))
			return nil
		},
	}
}
