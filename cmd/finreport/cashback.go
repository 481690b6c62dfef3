package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cashbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cashback <year> <month>",
		Short: "Print the estimated cashback per category for a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			txns, err := loadTable(cfg)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			fmt.Println(buildAssembler(cfg).CashbackAnalysis(txns, args[0], args[1]))
			return nil
		},
	}
}
