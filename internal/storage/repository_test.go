// ABOUTME: Tests for Repository interface implementations.
// ABOUTME: Verifies seeds, food/nutritable CRUD, and delete policies.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/nosh/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nosh.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}

// addFoodWithTable creates a food with one gram-based table and returns both.
func addFoodWithTable(t *testing.T, db *DB, name string) (*models.Food, *models.Nutritable) {
	t.Helper()
	food, err := db.CreateFood(name)
	if err != nil {
		t.Fatalf("CreateFood failed: %v", err)
	}
	table, err := db.CreateNutritable(NutritableInput{
		FoodID:      food.ID,
		UnitID:      1, // g
		BaseMeasure: 100,
		Kcals:       200,
		Carbs:       20,
		Fats:        10,
		Protein:     5,
	})
	if err != nil {
		t.Fatalf("CreateNutritable failed: %v", err)
	}
	return food, table
}

func TestSeededUnits(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	units, err := db.ListUnits()
	if err != nil {
		t.Fatalf("ListUnits failed: %v", err)
	}
	if len(units) != len(models.SeedUnits) {
		t.Fatalf("expected %d units, got %d", len(models.SeedUnits), len(units))
	}
	for i, u := range units {
		if u != models.SeedUnits[i] {
			t.Errorf("unit %d = %+v, want %+v", i, u, models.SeedUnits[i])
		}
	}

	g, err := db.GetUnit(1)
	if err != nil {
		t.Fatalf("GetUnit failed: %v", err)
	}
	if g.Symbol != "g" {
		t.Errorf("unit 1 symbol = %q, want g", g.Symbol)
	}
}

func TestSeedsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nosh.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	db.Close()

	// Reopening must not duplicate or error on existing seeds.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer db.Close()

	units, err := db.ListUnits()
	if err != nil {
		t.Fatalf("ListUnits failed: %v", err)
	}
	if len(units) != len(models.SeedUnits) {
		t.Errorf("expected %d units after reopen, got %d", len(models.SeedUnits), len(units))
	}
}

func TestCreateAndGetFood(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, err := db.CreateFood("oats")
	if err != nil {
		t.Fatalf("CreateFood failed: %v", err)
	}

	got, err := db.GetFood(food.ID)
	if err != nil {
		t.Fatalf("GetFood failed: %v", err)
	}
	if got.Name != "oats" || got.IsDeleted {
		t.Errorf("got %+v, want live food named oats", got)
	}

	byName, err := db.GetFoodByName("OATS")
	if err != nil {
		t.Fatalf("GetFoodByName failed: %v", err)
	}
	if byName.ID != food.ID {
		t.Errorf("GetFoodByName id = %d, want %d", byName.ID, food.ID)
	}
}

func TestCreateFoodDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.CreateFood("oats"); err != nil {
		t.Fatalf("CreateFood failed: %v", err)
	}
	if _, err := db.CreateFood("Oats"); err == nil {
		t.Error("expected duplicate name to be rejected")
	}
}

func TestDeletedFoodNameIsReusable(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, table := addFoodWithTable(t, db, "oats")
	if _, err := db.CreateEntry(EntryInput{
		FoodID: food.ID, NutritableID: table.ID,
		Date: time.Now(), Amount: 50, MealID: models.MealBreakfast,
	}); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	// Referenced, so the delete is soft; the name frees up regardless.
	if err := db.DeleteFood(food.ID); err != nil {
		t.Fatalf("DeleteFood failed: %v", err)
	}
	if _, err := db.CreateFood("oats"); err != nil {
		t.Errorf("name of soft-deleted food should be reusable: %v", err)
	}
}

func TestRenameFood(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, err := db.CreateFood("oats")
	if err != nil {
		t.Fatalf("CreateFood failed: %v", err)
	}
	if _, err := db.CreateFood("rice"); err != nil {
		t.Fatalf("CreateFood failed: %v", err)
	}

	if err := db.RenameFood(food.ID, "rolled oats"); err != nil {
		t.Fatalf("RenameFood failed: %v", err)
	}
	got, err := db.GetFood(food.ID)
	if err != nil {
		t.Fatalf("GetFood failed: %v", err)
	}
	if got.Name != "rolled oats" {
		t.Errorf("name = %q, want %q", got.Name, "rolled oats")
	}

	if err := db.RenameFood(food.ID, "rice"); err == nil {
		t.Error("expected rename onto an existing name to be rejected")
	}
}

func TestDeleteFoodHardWhenUnreferenced(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, table := addFoodWithTable(t, db, "oats")

	if err := db.DeleteFood(food.ID); err != nil {
		t.Fatalf("DeleteFood failed: %v", err)
	}

	if _, err := db.GetFood(food.ID); err == nil {
		t.Error("unreferenced food should be hard-deleted")
	}
	if _, err := db.GetNutritable(table.ID); err == nil {
		t.Error("tables of a hard-deleted food should be gone")
	}
}

func TestDeleteFoodSoftWhenReferenced(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, table := addFoodWithTable(t, db, "oats")
	if _, err := db.CreateEntry(EntryInput{
		FoodID: food.ID, NutritableID: table.ID,
		Date: time.Now(), Amount: 50, MealID: models.MealLunch,
	}); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	if err := db.DeleteFood(food.ID); err != nil {
		t.Fatalf("DeleteFood failed: %v", err)
	}

	got, err := db.GetFood(food.ID)
	if err != nil {
		t.Fatalf("referenced food should still resolve: %v", err)
	}
	if !got.IsDeleted {
		t.Error("referenced food should be soft-deleted")
	}

	// The journal still scales against the soft-deleted table.
	tables, err := db.GetNutritablesByIDs([]int64{table.ID})
	if err != nil {
		t.Fatalf("GetNutritablesByIDs failed: %v", err)
	}
	if len(tables) != 1 || !tables[0].IsDeleted {
		t.Errorf("expected one soft-deleted table, got %+v", tables)
	}

	// Live listings hide it.
	foods, err := db.ListFoods(false)
	if err != nil {
		t.Fatalf("ListFoods failed: %v", err)
	}
	if len(foods) != 0 {
		t.Errorf("expected no live foods, got %d", len(foods))
	}
}

func TestCreateNutritableDuplicateUnit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, _ := addFoodWithTable(t, db, "oats")

	_, err := db.CreateNutritable(NutritableInput{
		FoodID: food.ID, UnitID: 1, BaseMeasure: 50, Kcals: 100,
	})
	if err == nil {
		t.Error("expected second live table for the same unit to be rejected")
	}

	// A different unit is fine.
	if _, err := db.CreateNutritable(NutritableInput{
		FoodID: food.ID, UnitID: 6, BaseMeasure: 1, Kcals: 311,
	}); err != nil {
		t.Errorf("table for a different unit should be allowed: %v", err)
	}
}

func TestCreateNutritableValidation(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, err := db.CreateFood("oats")
	if err != nil {
		t.Fatalf("CreateFood failed: %v", err)
	}

	tests := []struct {
		name string
		in   NutritableInput
	}{
		{"zero base measure", NutritableInput{FoodID: food.ID, UnitID: 1, BaseMeasure: 0}},
		{"negative kcals", NutritableInput{FoodID: food.ID, UnitID: 1, BaseMeasure: 100, Kcals: -1}},
		{"unknown food", NutritableInput{FoodID: 999, UnitID: 1, BaseMeasure: 100}},
		{"unknown unit", NutritableInput{FoodID: food.ID, UnitID: 99, BaseMeasure: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := db.CreateNutritable(tt.in); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestUpdateNutritable(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, table := addFoodWithTable(t, db, "oats")

	err := db.UpdateNutritable(table.ID, NutritableInput{
		FoodID: food.ID, UnitID: 1,
		BaseMeasure: 30, Kcals: 113, Carbs: 17.9, Fats: 2.3, Protein: 3.1,
	})
	if err != nil {
		t.Fatalf("UpdateNutritable failed: %v", err)
	}

	got, err := db.GetNutritable(table.ID)
	if err != nil {
		t.Fatalf("GetNutritable failed: %v", err)
	}
	if got.BaseMeasure != 30 || got.Kcals != 113 {
		t.Errorf("got %+v, want base 30 / 113 kcal", got)
	}
	if got.Unit.Symbol != "g" {
		t.Errorf("unit changed to %q; units are fixed at creation", got.Unit.Symbol)
	}
}

func TestDeleteNutritablePolicies(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, grams := addFoodWithTable(t, db, "oats")
	cups, err := db.CreateNutritable(NutritableInput{
		FoodID: food.ID, UnitID: 6, BaseMeasure: 1, Kcals: 311,
	})
	if err != nil {
		t.Fatalf("CreateNutritable failed: %v", err)
	}

	if _, err := db.CreateEntry(EntryInput{
		FoodID: food.ID, NutritableID: grams.ID,
		Date: time.Now(), Amount: 50, MealID: models.MealDinner,
	}); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	// Referenced: soft.
	if err := db.DeleteNutritable(grams.ID); err != nil {
		t.Fatalf("DeleteNutritable failed: %v", err)
	}
	got, err := db.GetNutritable(grams.ID)
	if err != nil {
		t.Fatalf("soft-deleted table should still resolve: %v", err)
	}
	if !got.IsDeleted {
		t.Error("referenced table should be soft-deleted")
	}

	// Unreferenced: hard.
	if err := db.DeleteNutritable(cups.ID); err != nil {
		t.Fatalf("DeleteNutritable failed: %v", err)
	}
	if _, err := db.GetNutritable(cups.ID); err == nil {
		t.Error("unreferenced table should be hard-deleted")
	}
}

func TestListNutritablesByFoodExcludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	food, grams := addFoodWithTable(t, db, "oats")
	if _, err := db.CreateEntry(EntryInput{
		FoodID: food.ID, NutritableID: grams.ID,
		Date: time.Now(), Amount: 50, MealID: models.MealMorning,
	}); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}
	if err := db.DeleteNutritable(grams.ID); err != nil {
		t.Fatalf("DeleteNutritable failed: %v", err)
	}

	tables, err := db.ListNutritablesByFood(food.ID)
	if err != nil {
		t.Fatalf("ListNutritablesByFood failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("expected no live tables, got %d", len(tables))
	}
}
