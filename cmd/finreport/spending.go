package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func spendingCmd() *cobra.Command {
	var startDate string

	cmd := &cobra.Command{
		Use:   "spending <category>",
		Short: "Print spending in a category over the trailing 90 days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			txns, err := loadTable(cfg)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			fmt.Println(buildAssembler(cfg).SpendingByCategory(txns, args[0], startDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "date", "", "report end date, DD.MM.YYYY (default: today)")

	return cmd
}
