// ABOUTME: Meal enumeration for the five fixed daily slots.
// ABOUTME: Meal IDs 1-5 map to breakfast through dinner; 0 means whole day.
package models

import (
	"fmt"
	"strings"
)

// MealID identifies one of the five daily meal slots.
// MealDay (0) is reserved for whole-day aggregates and is never stored.
type MealID int64

const (
	MealDay       MealID = 0
	MealBreakfast MealID = 1
	MealMorning   MealID = 2
	MealLunch     MealID = 3
	MealAfternoon MealID = 4
	MealDinner    MealID = 5
)

// Meal is one of the five fixed daily slots. Static reference data.
type Meal struct {
	ID   MealID `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// AllMeals lists the five meal slots in order.
var AllMeals = []Meal{
	{ID: MealBreakfast, Name: "Breakfast"},
	{ID: MealMorning, Name: "Morning"},
	{ID: MealLunch, Name: "Lunch"},
	{ID: MealAfternoon, Name: "Afternoon"},
	{ID: MealDinner, Name: "Dinner"},
}

// IsValidMealID checks that an id names an actual meal slot (1-5).
func IsValidMealID(id MealID) bool {
	return id >= MealBreakfast && id <= MealDinner
}

// MealKey returns the lowercase key for a meal slot, as used in summary
// output and MCP payloads: breakfast, morning, lunch, afternoon, dinner.
func MealKey(id MealID) (string, error) {
	switch id {
	case MealBreakfast:
		return "breakfast", nil
	case MealMorning:
		return "morning", nil
	case MealLunch:
		return "lunch", nil
	case MealAfternoon:
		return "afternoon", nil
	case MealDinner:
		return "dinner", nil
	default:
		return "", fmt.Errorf("no such meal: %d", id)
	}
}

// MealIDByName resolves a meal name or key (case-insensitive match on the
// slot name) to its ID.
func MealIDByName(name string) (MealID, bool) {
	for _, m := range AllMeals {
		if strings.EqualFold(name, m.Name) {
			return m.ID, true
		}
	}
	return 0, false
}
