// ABOUTME: CLI command for per-meal and per-day macro summaries.
// ABOUTME: Fetches entries and tables, then runs the pure aggregation.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/nutrition"
	"github.com/harperreed/nosh/internal/summaries"
	"github.com/spf13/cobra"
)

var (
	summaryDate string
	summaryMeal string
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"sum", "s"},
	Short:   "Show macro totals per meal and for the day",
	Long: `Show aggregated kcal/protein/carb/fat totals for a date: one line per
meal slot plus the whole-day total.

Entries whose nutritional table can no longer be resolved count as zero
rather than failing the summary.

Examples:
  nosh summary
  nosh summary --date 2026-08-28
  nosh summary --meal breakfast`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag(summaryDate)
		if err != nil {
			return err
		}

		result, err := summaries.ComputeForDate(repo, date)
		if err != nil {
			return fmt.Errorf("failed to compute summaries: %w", err)
		}

		if summaryMeal != "" {
			mealID, err := parseMealFlag(summaryMeal)
			if err != nil {
				return err
			}
			printSummaryLine(summaryMeal, result.ByMeal(mealID).Rounded())
			return nil
		}

		printSummaries(date.Format(models.DateOnly), result)
		return nil
	},
}

func printSummaries(date string, result nutrition.MealSummaries) {
	fmt.Println(color.New(color.Bold).Sprint(date))
	for _, m := range models.AllMeals {
		key, _ := models.MealKey(m.ID)
		printSummaryLine(key, result.ByMeal(m.ID).Rounded())
	}
	printSummaryLine(color.New(color.Bold).Sprint("day"), result.Day.Rounded())
}

func printSummaryLine(label string, s nutrition.MacroSummary) {
	fmt.Printf("  %-10s %8.2f kcal  %7.2f protein  %7.2f carbs  %7.2f fat\n",
		label, s.Kcals, s.Protein, s.Carbs, s.Fat)
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	summaryCmd.Flags().StringVarP(&summaryMeal, "meal", "m", "", "show a single meal slot")
	rootCmd.AddCommand(summaryCmd)
}
