// ABOUTME: Journal entry model and day-granularity date handling.
// ABOUTME: Entries are immutable; edits are modeled as delete and recreate.
package models

import "time"

// DateOnly is the canonical day format entries are keyed and stored by.
const DateOnly = "2006-01-02"

// Day truncates a time to day granularity in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay parses a YYYY-MM-DD string into a day-granularity time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateOnly, s)
}

// Entry records an amount of a food, via one of its nutritables, consumed
// at a given meal on a given date.
//
// UnitID is a denormalized copy of the nutritable's unit at entry time, so
// the journal stays readable even after the table is edited or deleted.
type Entry struct {
	ID           int64     `json:"id" yaml:"id"`
	FoodID       int64     `json:"food_id" yaml:"food_id"`
	NutritableID int64     `json:"nutritable_id" yaml:"nutritable_id"`
	Date         time.Time `json:"date" yaml:"date"`
	Amount       float64   `json:"amount" yaml:"amount"`
	UnitID       int64     `json:"unit_id" yaml:"unit_id"`
	MealID       MealID    `json:"meal_id" yaml:"meal_id"`
}
