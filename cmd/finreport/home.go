package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home <datetime>",
		Short: "Print the home page digest",
		Long: `Assemble the home page digest for the month ending at the given
reference instant ("YYYY-MM-DD HH:MM:SS"): greeting, per-card spend totals,
top transactions by amount, currency rates and stock prices.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			txns, err := loadTable(cfg)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			out, err := buildAssembler(cfg).HomeDigest(context.Background(), txns, args[0])
			if err != nil {
				return err
			}

			fmt.Println(out)
			return nil
		},
	}
}
