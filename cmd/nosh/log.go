// ABOUTME: CLI command for logging journal entries.
// ABOUTME: Resolves the food and table, then records amount/meal/date.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/spf13/cobra"
)

var (
	logMeal    string
	logDate    string
	logTableID int64
	logUnit    string
)

var logCmd = &cobra.Command{
	Use:     "log <food> <amount>",
	Aliases: []string{"eat"},
	Short:   "Log a food you ate",
	Long: `Log an amount of a food for a meal on a date.

The amount is interpreted in the unit of the food's nutritional table. If
the food has several tables, pick one with --unit or --table.

Examples:
  nosh log oats 50 --meal breakfast
  nosh log oats 1 --unit cup --meal morning
  nosh log "greek yogurt" 150 --meal dinner --date 2026-08-28`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		food, err := resolveFood(args[0])
		if err != nil {
			return err
		}

		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[1])
		}
		if v := models.ValidateEntryInput(amount); !v.OK() {
			return fmt.Errorf("invalid amount: %s", v.Errors[0].Message)
		}

		mealID, err := parseMealFlag(logMeal)
		if err != nil {
			return err
		}

		date, err := parseDateFlag(logDate)
		if err != nil {
			return err
		}

		table, err := pickTable(food, logTableID, logUnit)
		if err != nil {
			return err
		}

		entry, err := repo.CreateEntry(storage.EntryInput{
			FoodID:       food.ID,
			NutritableID: table.ID,
			Date:         date,
			Amount:       amount,
			MealID:       mealID,
		})
		if err != nil {
			return fmt.Errorf("failed to log entry: %w", err)
		}

		mealKey, _ := models.MealKey(entry.MealID)
		color.Green("✓ Logged %s", food.Name)
		fmt.Printf("  %s %.6g %s at %s on %s\n",
			color.New(color.Faint).Sprintf("id %d", entry.ID),
			entry.Amount, table.Unit.Symbol, mealKey,
			entry.Date.Format(models.DateOnly))
		return nil
	},
}

// pickTable chooses the nutritable an entry scales against: an explicit
// --table id, an explicit --unit, or the food's only table.
func pickTable(food *models.Food, tableID int64, unitSymbol string) (*models.Nutritable, error) {
	if tableID > 0 {
		table, err := repo.GetNutritable(tableID)
		if err != nil {
			return nil, err
		}
		if table.FoodID != food.ID {
			return nil, fmt.Errorf("table %d does not belong to %s", tableID, food.Name)
		}
		return table, nil
	}

	tables, err := repo.ListNutritablesByFood(food.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("%s has no nutritional table yet; add one with 'nosh table add'", food.Name)
	}

	if unitSymbol != "" {
		for _, t := range tables {
			if t.Unit.Symbol == unitSymbol {
				return t, nil
			}
		}
		return nil, fmt.Errorf("%s has no table for unit %s", food.Name, unitSymbol)
	}

	if len(tables) == 1 {
		return tables[0], nil
	}
	return nil, fmt.Errorf("%s has %d tables; pick one with --unit or --table", food.Name, len(tables))
}

func init() {
	logCmd.Flags().StringVarP(&logMeal, "meal", "m", "", "meal slot (breakfast, morning, lunch, afternoon, dinner)")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	logCmd.Flags().Int64Var(&logTableID, "table", 0, "nutritional table id to scale against")
	logCmd.Flags().StringVarP(&logUnit, "unit", "u", "", "pick the table for this unit")
	_ = logCmd.MarkFlagRequired("meal")
	rootCmd.AddCommand(logCmd)
}
