// ABOUTME: Tests for the meal enumeration and key mapping.
// ABOUTME: Verifies the five fixed slots and rejection of unknown ids.
package models

import "testing"

func TestMealKey(t *testing.T) {
	tests := []struct {
		id   MealID
		want string
	}{
		{MealBreakfast, "breakfast"},
		{MealMorning, "morning"},
		{MealLunch, "lunch"},
		{MealAfternoon, "afternoon"},
		{MealDinner, "dinner"},
	}

	for _, tt := range tests {
		got, err := MealKey(tt.id)
		if err != nil {
			t.Fatalf("MealKey(%d) returned error: %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("MealKey(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestMealKeyUnknown(t *testing.T) {
	for _, id := range []MealID{0, 6, -1} {
		if _, err := MealKey(id); err == nil {
			t.Errorf("MealKey(%d) expected error, got nil", id)
		}
	}
}

func TestIsValidMealID(t *testing.T) {
	for id := MealID(1); id <= 5; id++ {
		if !IsValidMealID(id) {
			t.Errorf("IsValidMealID(%d) = false, want true", id)
		}
	}
	for _, id := range []MealID{0, 6, 100} {
		if IsValidMealID(id) {
			t.Errorf("IsValidMealID(%d) = true, want false", id)
		}
	}
}

func TestMealIDByName(t *testing.T) {
	tests := []struct {
		name string
		want MealID
		ok   bool
	}{
		{"breakfast", MealBreakfast, true},
		{"Breakfast", MealBreakfast, true},
		{"DINNER", MealDinner, true},
		{"afternoon", MealAfternoon, true},
		{"brunch", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := MealIDByName(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("MealIDByName(%q) = (%d, %v), want (%d, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
