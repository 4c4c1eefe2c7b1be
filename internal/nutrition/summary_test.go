// ABOUTME: Tests for the meal summary aggregation engine.
// ABOUTME: Verifies the day-equals-sum-of-meals invariant and degradations.
package nutrition

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/nosh/internal/models"
)

var testDay = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

// oatsTable is the reference table used across scenarios:
// per 100 g: 200 kcal, 10 fat, 20 carbs, 5 protein.
var oatsTable = models.Nutritable{
	ID:          1,
	FoodID:      1,
	Unit:        models.Unit{ID: 1, Symbol: "g"},
	BaseMeasure: 100,
	Kcals:       200,
	Fats:        10,
	Carbs:       20,
	Protein:     5,
}

func entry(id int64, nutritableID int64, amount float64, meal models.MealID) models.Entry {
	return models.Entry{
		ID:           id,
		FoodID:       1,
		NutritableID: nutritableID,
		Date:         testDay,
		Amount:       amount,
		UnitID:       1,
		MealID:       meal,
	}
}

func assertSummary(t *testing.T, got MacroSummary, kcals, fat, carbs, protein float64) {
	t.Helper()
	const tol = 1e-9
	if math.Abs(got.Kcals-kcals) > tol {
		t.Errorf("kcals = %v, want %v", got.Kcals, kcals)
	}
	if math.Abs(got.Fat-fat) > tol {
		t.Errorf("fat = %v, want %v", got.Fat, fat)
	}
	if math.Abs(got.Carbs-carbs) > tol {
		t.Errorf("carbs = %v, want %v", got.Carbs, carbs)
	}
	if math.Abs(got.Protein-protein) > tol {
		t.Errorf("protein = %v, want %v", got.Protein, protein)
	}
}

func TestComputeMealSummariesEmpty(t *testing.T) {
	got := ComputeMealSummaries(nil, nil)

	for _, m := range []models.MealID{0, 1, 2, 3, 4, 5} {
		assertSummary(t, got.ByMeal(m), 0, 0, 0, 0)
	}
	if got.Breakfast.MealID != models.MealBreakfast {
		t.Errorf("breakfast meal id = %d, want %d", got.Breakfast.MealID, models.MealBreakfast)
	}
	if got.Day.MealID != models.MealDay {
		t.Errorf("day meal id = %d, want %d", got.Day.MealID, models.MealDay)
	}
}

func TestComputeMealSummariesSingleEntry(t *testing.T) {
	// 50 g of the reference table at breakfast scales everything by half.
	entries := []models.Entry{entry(1, oatsTable.ID, 50, models.MealBreakfast)}

	got := ComputeMealSummaries(entries, []models.Nutritable{oatsTable})

	assertSummary(t, got.Breakfast, 100, 5, 10, 2.5)
	assertSummary(t, got.Day, 100, 5, 10, 2.5)
	for _, m := range []models.MealID{2, 3, 4, 5} {
		assertSummary(t, got.ByMeal(m), 0, 0, 0, 0)
	}
}

func TestComputeMealSummariesTwoMeals(t *testing.T) {
	entries := []models.Entry{
		entry(1, oatsTable.ID, 100, models.MealBreakfast),
		entry(2, oatsTable.ID, 200, models.MealLunch),
	}

	got := ComputeMealSummaries(entries, []models.Nutritable{oatsTable})

	assertSummary(t, got.Breakfast, 200, 10, 20, 5)
	assertSummary(t, got.Lunch, 400, 20, 40, 10)
	assertSummary(t, got.Day, 600, 30, 60, 15)
}

func TestComputeMealSummariesDayEqualsSumOfMeals(t *testing.T) {
	second := oatsTable
	second.ID = 2
	second.BaseMeasure = 30
	second.Kcals = 113
	second.Protein = 3.1
	second.Carbs = 17.9
	second.Fats = 2.3

	entries := []models.Entry{
		entry(1, 1, 73.5, models.MealBreakfast),
		entry(2, 2, 45, models.MealBreakfast),
		entry(3, 1, 120, models.MealMorning),
		entry(4, 2, 33.3, models.MealLunch),
		entry(5, 1, 250, models.MealAfternoon),
		entry(6, 2, 61, models.MealDinner),
		entry(7, 1, 18, models.MealDinner),
	}

	got := ComputeMealSummaries(entries, []models.Nutritable{oatsTable, second})

	meals := []MacroSummary{got.Breakfast, got.Morning, got.Lunch, got.Afternoon, got.Dinner}
	var kcals, fat, carbs, protein float64
	for _, m := range meals {
		kcals += m.Kcals
		fat += m.Fat
		carbs += m.Carbs
		protein += m.Protein
	}
	assertSummary(t, got.Day, kcals, fat, carbs, protein)
}

func TestComputeMealSummariesIdempotent(t *testing.T) {
	entries := []models.Entry{
		entry(1, oatsTable.ID, 100, models.MealBreakfast),
		entry(2, oatsTable.ID, 200, models.MealLunch),
	}
	tables := []models.Nutritable{oatsTable}

	first := ComputeMealSummaries(entries, tables)
	second := ComputeMealSummaries(entries, tables)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different outputs:\n%+v\n%+v", first, second)
	}
}

func TestComputeMealSummariesMissingNutritable(t *testing.T) {
	// Entry 2 references a table that is not in the resolved set; it must
	// contribute zero, not panic and not drop the other entry.
	entries := []models.Entry{
		entry(1, oatsTable.ID, 100, models.MealBreakfast),
		entry(2, 999, 500, models.MealBreakfast),
	}

	got := ComputeMealSummaries(entries, []models.Nutritable{oatsTable})

	assertSummary(t, got.Breakfast, 200, 10, 20, 5)
	assertSummary(t, got.Day, 200, 10, 20, 5)
}

func TestComputeMealSummariesZeroBaseMeasure(t *testing.T) {
	broken := oatsTable
	broken.ID = 2
	broken.BaseMeasure = 0

	entries := []models.Entry{entry(1, broken.ID, 50, models.MealLunch)}

	got := ComputeMealSummaries(entries, []models.Nutritable{broken})

	// scale(x, 50, 0) normalizes to 0, never NaN/Inf.
	assertSummary(t, got.Lunch, 0, 0, 0, 0)
	assertSummary(t, got.Day, 0, 0, 0, 0)
}

func TestComputeMealSummariesUnknownMealID(t *testing.T) {
	entries := []models.Entry{
		entry(1, oatsTable.ID, 100, models.MealBreakfast),
		entry(2, oatsTable.ID, 100, models.MealID(9)),
	}

	got := ComputeMealSummaries(entries, []models.Nutritable{oatsTable})

	// The malformed entry lands nowhere; breakfast and day stay consistent.
	assertSummary(t, got.Breakfast, 200, 10, 20, 5)
	assertSummary(t, got.Day, 200, 10, 20, 5)
}

func TestMealSummariesRounded(t *testing.T) {
	entries := []models.Entry{entry(1, oatsTable.ID, 33.333, models.MealDinner)}

	got := ComputeMealSummaries(entries, []models.Nutritable{oatsTable}).Rounded()

	if got.Dinner.Kcals != 66.67 {
		t.Errorf("rounded dinner kcals = %v, want 66.67", got.Dinner.Kcals)
	}
}
