// ABOUTME: Journal entry reads and writes for SQLite storage.
// ABOUTME: Entries are immutable; edits happen as delete plus recreate.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/nosh/internal/models"
)

// EntryInput holds the fields needed to log a journal entry. The unit is
// not an input: it is copied from the nutritable at write time so the entry
// stays readable after the table changes.
type EntryInput struct {
	FoodID       int64
	NutritableID int64
	Date         time.Time
	Amount       float64
	MealID       models.MealID
}

// CreateEntry logs an amount of a food eaten at a meal on a date. The
// referenced nutritable must exist and belong to the food.
func (d *DB) CreateEntry(in EntryInput) (*models.Entry, error) {
	if v := models.ValidateEntryInput(in.Amount); !v.OK() {
		return nil, fmt.Errorf("create entry: %s", v.Errors[0].Message)
	}
	if !models.IsValidMealID(in.MealID) {
		return nil, fmt.Errorf("create entry: invalid meal id: %d", in.MealID)
	}

	table, err := d.GetNutritable(in.NutritableID)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	if table.FoodID != in.FoodID {
		return nil, fmt.Errorf("create entry: nutritable %d does not belong to food %d", in.NutritableID, in.FoodID)
	}

	day := models.Day(in.Date)
	result, err := d.db.Exec(`
		INSERT INTO entries (food_id, nutritable_id, date, amount, unit_id, meal_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.FoodID, in.NutritableID, day.Format(models.DateOnly),
		in.Amount, table.Unit.ID, int64(in.MealID),
	)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	d.notifyChange("entries")

	return &models.Entry{
		ID:           id,
		FoodID:       in.FoodID,
		NutritableID: in.NutritableID,
		Date:         day,
		Amount:       in.Amount,
		UnitID:       table.Unit.ID,
		MealID:       in.MealID,
	}, nil
}

const entryColumns = "id, food_id, nutritable_id, date, amount, unit_id, meal_id"

// ListEntriesByDate returns every entry logged on a given date.
func (d *DB) ListEntriesByDate(date time.Time) ([]models.Entry, error) {
	query := "SELECT " + entryColumns + " FROM entries WHERE date = ? ORDER BY meal_id, id"
	rows, err := d.db.Query(query, models.Day(date).Format(models.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListEntriesByMealAndDate returns the entries for one meal slot on a date.
func (d *DB) ListEntriesByMealAndDate(date time.Time, mealID models.MealID) ([]models.Entry, error) {
	query := "SELECT " + entryColumns + " FROM entries WHERE date = ? AND meal_id = ? ORDER BY id"
	rows, err := d.db.Query(query, models.Day(date).Format(models.DateOnly), int64(mealID))
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// DeleteEntry removes a journal entry for good.
func (d *DB) DeleteEntry(id int64) error {
	result, err := d.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry not found: %d", id)
	}

	d.notifyChange("entries")
	return nil
}

// scanEntries scans entry rows, parsing the stored day strings.
func scanEntries(rows *sql.Rows) ([]models.Entry, error) {
	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		var date string
		var mealID int64
		err := rows.Scan(&e.ID, &e.FoodID, &e.NutritableID, &date, &e.Amount, &e.UnitID, &mealID)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Date, err = models.ParseDay(date)
		if err != nil {
			return nil, fmt.Errorf("parse entry date %q: %w", date, err)
		}
		e.MealID = models.MealID(mealID)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
