// ABOUTME: CLI commands for managing nutritional tables.
// ABOUTME: One live table per (food, unit); macros defined per base measure.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/nutrition"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/spf13/cobra"
)

var (
	tableUnit    string
	tableBase    float64
	tableKcals   float64
	tableProtein float64
	tableCarbs   float64
	tableFats    float64
)

var tableCmd = &cobra.Command{
	Use:     "table",
	Aliases: []string{"tables", "t"},
	Short:   "Manage nutritional tables",
	Long: `Manage nutritional tables. A table states a food's macros per a base
measure of one unit, e.g. "per 100 g of oats: 389 kcal, 17 protein".

A food can carry several tables (one per unit) so you can log the same food
in grams one day and cups the next.`,
}

var tableAddCmd = &cobra.Command{
	Use:   "add <food>",
	Short: "Add a nutritional table to a food",
	Long: `Add a nutritional table to a food.

Examples:
  nosh table add oats --unit g --base 100 --kcals 389 --protein 17 --carbs 66 --fats 7
  nosh table add oats --unit cup --base 1 --kcals 311 --protein 13 --carbs 53 --fats 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		food, err := resolveFood(args[0])
		if err != nil {
			return err
		}

		unit, ok := models.UnitBySymbol(tableUnit)
		if !ok {
			return fmt.Errorf("unknown unit: %s (see 'nosh units')", tableUnit)
		}

		expected := nutrition.CaloriesFromMacros(tableProtein, tableCarbs, tableFats)
		v := models.ValidateFoodInput(models.FoodInput{
			Name:          food.Name,
			BaseMeasure:   tableBase,
			Kcals:         tableKcals,
			ExpectedKcals: expected,
		})
		if !v.OK() {
			return fmt.Errorf("invalid table: %s", v.Errors[0].Message)
		}
		for _, e := range v.Errors {
			if e.Severity == models.SeverityWarning {
				color.Yellow("! %s", e.Message)
			}
		}

		table, err := repo.CreateNutritable(storage.NutritableInput{
			FoodID:      food.ID,
			UnitID:      unit.ID,
			BaseMeasure: tableBase,
			Kcals:       tableKcals,
			Carbs:       tableCarbs,
			Fats:        tableFats,
			Protein:     tableProtein,
		})
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}

		color.Green("✓ Added table for %s", food.Name)
		fmt.Printf("  %s per %.6g %s: %.6g kcal, %.6g protein, %.6g carbs, %.6g fat\n",
			color.New(color.Faint).Sprintf("id %d", table.ID),
			table.BaseMeasure, table.Unit.Symbol,
			table.Kcals, table.Protein, table.Carbs, table.Fats)
		return nil
	},
}

var tableListCmd = &cobra.Command{
	Use:     "list <food>",
	Aliases: []string{"ls"},
	Short:   "List a food's nutritional tables",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		food, err := resolveFood(args[0])
		if err != nil {
			return err
		}

		tables, err := repo.ListNutritablesByFood(food.ID)
		if err != nil {
			return fmt.Errorf("failed to list tables: %w", err)
		}

		if len(tables) == 0 {
			fmt.Printf("No tables for %s.\n", food.Name)
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range tables {
			fmt.Printf("%s per %.6g %-5s %8.6g kcal  %6.6g protein  %6.6g carbs  %6.6g fat\n",
				faint.Sprintf("%4d", t.ID),
				t.BaseMeasure, t.Unit.Symbol,
				t.Kcals, t.Protein, t.Carbs, t.Fats)
		}
		return nil
	},
}

var tableEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a nutritional table's measurements",
	Long: `Edit a table's base measure and macros. Only the flags you pass change;
the rest keep their current values. The unit is fixed; to move a food to a
different unit, add a new table instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid table id: %s", args[0])
		}

		table, err := repo.GetNutritable(id)
		if err != nil {
			return err
		}

		err = repo.UpdateNutritable(id, mergeTableEdit(table, cmd.Flags().Changed))
		if err != nil {
			return fmt.Errorf("failed to update table: %w", err)
		}

		color.Green("✓ Updated table %d", id)
		return nil
	},
}

// mergeTableEdit overlays only the flags the user actually set onto the
// table's current values, so a one-field edit leaves the rest intact.
func mergeTableEdit(table *models.Nutritable, changed func(string) bool) storage.NutritableInput {
	in := storage.NutritableInput{
		FoodID:      table.FoodID,
		UnitID:      table.Unit.ID,
		BaseMeasure: table.BaseMeasure,
		Kcals:       table.Kcals,
		Carbs:       table.Carbs,
		Fats:        table.Fats,
		Protein:     table.Protein,
	}
	if changed("base") {
		in.BaseMeasure = tableBase
	}
	if changed("kcals") {
		in.Kcals = tableKcals
	}
	if changed("protein") {
		in.Protein = tableProtein
	}
	if changed("carbs") {
		in.Carbs = tableCarbs
	}
	if changed("fats") {
		in.Fats = tableFats
	}
	return in
}

var tableDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a nutritional table",
	Long: `Delete a nutritional table. A table referenced by journal entries is only
hidden so old entries keep scaling correctly; an unreferenced table is
removed for good.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid table id: %s", args[0])
		}

		if err := repo.DeleteNutritable(id); err != nil {
			return fmt.Errorf("failed to delete table: %w", err)
		}

		color.Yellow("✗ Deleted table %d", id)
		return nil
	},
}

func addTableMacroFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tableBase, "base", 100, "base measure the macros are defined per")
	cmd.Flags().Float64Var(&tableKcals, "kcals", 0, "calories per base measure")
	cmd.Flags().Float64Var(&tableProtein, "protein", 0, "protein grams per base measure")
	cmd.Flags().Float64Var(&tableCarbs, "carbs", 0, "carb grams per base measure")
	cmd.Flags().Float64Var(&tableFats, "fats", 0, "fat grams per base measure")
}

func init() {
	tableAddCmd.Flags().StringVar(&tableUnit, "unit", "g", "measurement unit symbol")
	addTableMacroFlags(tableAddCmd)
	addTableMacroFlags(tableEditCmd)

	tableCmd.AddCommand(tableAddCmd)
	tableCmd.AddCommand(tableListCmd)
	tableCmd.AddCommand(tableEditCmd)
	tableCmd.AddCommand(tableDeleteCmd)
	rootCmd.AddCommand(tableCmd)
}
