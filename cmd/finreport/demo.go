package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

// The fixed example invocations the original entry point ran.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the three example report invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			txns, err := loadTable(cfg)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}
			assembler := buildAssembler(cfg)

			fmt.Println(sectionStyle.Render("Home page digest"))
			digest, err := assembler.HomeDigest(context.Background(), txns, "2021-04-10 20:30:00")
			if err != nil {
				return err
			}
			fmt.Println(digest)

			fmt.Println(sectionStyle.Render("Spending by category"))
			fmt.Println(assembler.SpendingByCategory(txns, "Fuel", "01.02.2018"))

			fmt.Println(sectionStyle.Render("Cashback analysis"))
			fmt.Println(assembler.CashbackAnalysis(txns, "2021", "05"))

			return nil
		},
	}
}
