// ABOUTME: CLI commands for managing the food catalog.
// ABOUTME: Add, list, rename, and delete foods (soft or hard per references).
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/nosh/internal/models"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:     "food",
	Aliases: []string{"foods", "f"},
	Short:   "Manage the food catalog",
}

var foodAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a food to the catalog",
	Long: `Add a food to the catalog. Names are unique among live foods.

Examples:
  nosh food add oats
  nosh food add "greek yogurt"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		food, err := repo.CreateFood(args[0])
		if err != nil {
			return fmt.Errorf("failed to create food: %w", err)
		}

		color.Green("✓ Added %s", food.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("id %d", food.ID))
		return nil
	},
}

var foodListDeleted bool

var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := repo.ListFoods(foodListDeleted)
		if err != nil {
			return fmt.Errorf("failed to list foods: %w", err)
		}

		if len(foods) == 0 {
			fmt.Println("No foods found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, f := range foods {
			tables, err := repo.ListNutritablesByFood(f.ID)
			if err != nil {
				return fmt.Errorf("failed to list tables for %s: %w", f.Name, err)
			}
			var units []string
			for _, t := range tables {
				units = append(units, t.Unit.Symbol)
			}
			mark := ""
			if f.IsDeleted {
				mark = faint.Sprint(" (deleted)")
			}
			fmt.Printf("%s %s%s %s\n",
				faint.Sprintf("%4d", f.ID),
				f.Name, mark,
				faint.Sprintf("[%s]", strings.Join(units, ", ")))
		}
		return nil
	},
}

var foodRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a food",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid food id: %s", args[0])
		}

		if err := repo.RenameFood(id, args[1]); err != nil {
			return fmt.Errorf("failed to rename food: %w", err)
		}

		color.Green("✓ Renamed food %d to %s", id, args[1])
		return nil
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:     "delete <id or name>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a food",
	Long: `Delete a food from the catalog.

A food referenced by journal entries is only hidden (soft-deleted) so your
history keeps its numbers; an unreferenced food is removed for good along
with its nutritional tables.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		food, err := resolveFood(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteFood(food.ID); err != nil {
			return fmt.Errorf("failed to delete food: %w", err)
		}

		color.Yellow("✗ Deleted %s", food.Name)
		return nil
	},
}

// resolveFood finds a live food by numeric id or by name.
func resolveFood(idOrName string) (*models.Food, error) {
	if id, err := strconv.ParseInt(idOrName, 10, 64); err == nil {
		food, err := repo.GetFood(id)
		if err != nil {
			return nil, fmt.Errorf("food not found: %s", idOrName)
		}
		return food, nil
	}
	food, err := repo.GetFoodByName(idOrName)
	if err != nil {
		return nil, fmt.Errorf("food not found: %s", idOrName)
	}
	return food, nil
}

func init() {
	foodListCmd.Flags().BoolVar(&foodListDeleted, "deleted", false, "include soft-deleted foods")
	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodRenameCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	rootCmd.AddCommand(foodCmd)
}
