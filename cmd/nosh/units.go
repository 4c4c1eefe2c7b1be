// ABOUTME: CLI command for listing the measurement unit catalog.
// ABOUTME: Units are seeded reference data and cannot be edited.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List measurement units",
	RunE: func(cmd *cobra.Command, args []string) error {
		units, err := repo.ListUnits()
		if err != nil {
			return fmt.Errorf("failed to list units: %w", err)
		}

		faint := color.New(color.Faint)
		for _, u := range units {
			fmt.Printf("%s %s\n", faint.Sprintf("%2d", u.ID), u.Symbol)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
