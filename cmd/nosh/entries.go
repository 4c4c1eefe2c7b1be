// ABOUTME: CLI commands for listing and deleting journal entries.
// ABOUTME: Entries are immutable; to edit one, delete and re-log it.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/spf13/cobra"
)

var (
	entriesDate string
	entriesMeal string
)

var entriesCmd = &cobra.Command{
	Use:     "entries",
	Aliases: []string{"e"},
	Short:   "List journal entries",
	Long: `List journal entries for a date, optionally for a single meal.

Examples:
  nosh entries                    # Today's entries
  nosh entries --date 2026-08-28
  nosh entries --meal lunch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(entriesDate)
		if err != nil {
			return err
		}

		var entries []models.Entry
		if entriesMeal != "" {
			mealID, err := parseMealFlag(entriesMeal)
			if err != nil {
				return err
			}
			entries, err = repo.ListEntriesByMealAndDate(date, mealID)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}
		} else {
			entries, err = repo.ListEntriesByDate(date)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}
		}

		if len(entries) == 0 {
			fmt.Printf("No entries on %s.\n", date.Format(models.DateOnly))
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			food, err := repo.GetFood(e.FoodID)
			if err != nil {
				return fmt.Errorf("failed to resolve food %d: %w", e.FoodID, err)
			}
			unit, err := repo.GetUnit(e.UnitID)
			if err != nil {
				return fmt.Errorf("failed to resolve unit %d: %w", e.UnitID, err)
			}
			mealKey, _ := models.MealKey(e.MealID)
			fmt.Printf("%s %-10s %-20s %.6g %s\n",
				faint.Sprintf("%4d", e.ID),
				mealKey, food.Name, e.Amount, unit.Symbol)
		}
		return nil
	},
}

var entriesDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a journal entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry id: %s", args[0])
		}

		if err := repo.DeleteEntry(id); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		color.Yellow("✗ Deleted entry %d", id)
		return nil
	},
}

func init() {
	entriesCmd.Flags().StringVarP(&entriesDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	entriesCmd.Flags().StringVarP(&entriesMeal, "meal", "m", "", "filter by meal slot")
	entriesCmd.AddCommand(entriesDeleteCmd)
	rootCmd.AddCommand(entriesCmd)
}
