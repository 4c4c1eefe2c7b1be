// ABOUTME: Tests for the table edit flag merging.
// ABOUTME: A partial edit must not clobber unset fields with flag defaults.
package main

import (
	"testing"

	"github.com/harperreed/nosh/internal/models"
	"github.com/spf13/cobra"
)

func parseTableFlags(t *testing.T, args ...string) func(string) bool {
	t.Helper()
	cmd := &cobra.Command{Use: "edit"}
	addTableMacroFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	return cmd.Flags().Changed
}

var editFixture = &models.Nutritable{
	ID:          7,
	FoodID:      3,
	Unit:        models.Unit{ID: 1, Symbol: "g"},
	BaseMeasure: 30,
	Kcals:       113,
	Carbs:       17.9,
	Fats:        2.3,
	Protein:     3.1,
}

func TestMergeTableEditSingleFlag(t *testing.T) {
	changed := parseTableFlags(t, "--kcals", "400")

	got := mergeTableEdit(editFixture, changed)

	if got.Kcals != 400 {
		t.Errorf("kcals = %v, want 400", got.Kcals)
	}
	// Everything else keeps the table's current values, not flag defaults.
	if got.BaseMeasure != 30 {
		t.Errorf("base measure = %v, want 30", got.BaseMeasure)
	}
	if got.Protein != 3.1 || got.Carbs != 17.9 || got.Fats != 2.3 {
		t.Errorf("macros = %v/%v/%v, want 3.1/17.9/2.3", got.Protein, got.Carbs, got.Fats)
	}
	if got.FoodID != 3 || got.UnitID != 1 {
		t.Errorf("identity = food %d unit %d, want food 3 unit 1", got.FoodID, got.UnitID)
	}
}

func TestMergeTableEditExplicitZero(t *testing.T) {
	// Setting a flag to its default value still counts as an edit.
	changed := parseTableFlags(t, "--fats", "0")

	got := mergeTableEdit(editFixture, changed)

	if got.Fats != 0 {
		t.Errorf("fats = %v, want explicit 0", got.Fats)
	}
	if got.Kcals != 113 {
		t.Errorf("kcals = %v, want 113 untouched", got.Kcals)
	}
}

func TestMergeTableEditNoFlags(t *testing.T) {
	changed := parseTableFlags(t)

	got := mergeTableEdit(editFixture, changed)

	if got.BaseMeasure != 30 || got.Kcals != 113 ||
		got.Protein != 3.1 || got.Carbs != 17.9 || got.Fats != 2.3 {
		t.Errorf("no-flag edit changed values: %+v", got)
	}
}
