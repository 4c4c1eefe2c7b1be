// ABOUTME: Root Cobra command for nosh CLI.
// ABOUTME: Handles config loading and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/harperreed/nosh/internal/config"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo *storage.DB
)

var rootCmd = &cobra.Command{
	Use:   "nosh",
	Short: "Local nutrition journal",
	Long: `Nosh is a CLI nutrition journal: log foods per meal per day and get
per-meal and per-day macro summaries.

HOW IT FITS TOGETHER:

  Food        a named ingredient or dish ("oats")
  Table       a nutritional table for a food: macros per base measure of a
              unit ("per 100 g: 389 kcal, 17 protein, 66 carbs, 7 fat")
  Entry       an amount of a food eaten at a meal on a date
  Summary     scaled macro totals per meal plus the whole-day total

QUICK START:

  $ nosh food add oats                                  # Create a food
  $ nosh table add oats --unit g --base 100 \
      --kcals 389 --protein 17 --carbs 66 --fats 7      # Add its table
  $ nosh log oats 50 --meal breakfast                   # Log 50 g for breakfast
  $ nosh summary                                        # Today's totals
  $ nosh summary --date 2026-08-28 --meal lunch         # One meal, one day

MEALS:

  Five fixed slots per day: breakfast, morning, lunch, afternoon, dinner.

LIVE VIEW:

  $ nosh watch        # Re-prints today's summary whenever the journal changes

MCP INTEGRATION:

  Run 'nosh mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "nosh": { "command": "nosh", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  SQLite at ~/.local/share/nosh/nosh.db (override with NOSH_DATA_DIR or
  NOSH_DB_PATH).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the database
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// parseDateFlag turns a --date value into a day-granularity time,
// defaulting to today when empty.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" || s == "today" {
		return models.Day(time.Now()), nil
	}
	if s == "yesterday" {
		return models.Day(time.Now().AddDate(0, 0, -1)), nil
	}
	t, err := models.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// parseMealFlag resolves a --meal value (name or 1-5) to a meal id.
func parseMealFlag(s string) (models.MealID, error) {
	if id, ok := models.MealIDByName(s); ok {
		return id, nil
	}
	var n int64
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && models.IsValidMealID(models.MealID(n)) {
		return models.MealID(n), nil
	}
	return 0, fmt.Errorf("unknown meal %q (want breakfast, morning, lunch, afternoon, dinner or 1-5)", s)
}
