// ABOUTME: SQLite schema definition, initialization, and reference seeds.
// ABOUTME: Defines units, meals, foods, nutritables, and entries tables.
package storage

import (
	"fmt"

	"github.com/harperreed/nosh/internal/models"
)

// initSchema creates or updates the database schema and seeds the unit and
// meal reference tables.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS units (
		id INTEGER PRIMARY KEY,
		symbol TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS meals (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS foods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		is_deleted INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS nutritables (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		food_id INTEGER NOT NULL,
		unit_id INTEGER NOT NULL,
		base_measure REAL NOT NULL CHECK (base_measure > 0),
		kcals REAL NOT NULL DEFAULT 0,
		carbs REAL NOT NULL DEFAULT 0,
		fats REAL NOT NULL DEFAULT 0,
		protein REAL NOT NULL DEFAULT 0,
		is_deleted INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (food_id) REFERENCES foods(id),
		FOREIGN KEY (unit_id) REFERENCES units(id)
	);

	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		food_id INTEGER NOT NULL,
		nutritable_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		amount REAL NOT NULL CHECK (amount > 0),
		unit_id INTEGER NOT NULL,
		meal_id INTEGER NOT NULL CHECK (meal_id BETWEEN 1 AND 5),
		FOREIGN KEY (food_id) REFERENCES foods(id),
		FOREIGN KEY (nutritable_id) REFERENCES nutritables(id),
		FOREIGN KEY (unit_id) REFERENCES units(id),
		FOREIGN KEY (meal_id) REFERENCES meals(id)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_foods_live_name
		ON foods(name) WHERE is_deleted = 0;
	CREATE UNIQUE INDEX IF NOT EXISTS idx_nutritables_live_food_unit
		ON nutritables(food_id, unit_id) WHERE is_deleted = 0;
	CREATE INDEX IF NOT EXISTS idx_nutritables_food ON nutritables(food_id);
	CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
	CREATE INDEX IF NOT EXISTS idx_entries_date_meal ON entries(date, meal_id);
	CREATE INDEX IF NOT EXISTS idx_entries_nutritable ON entries(nutritable_id);
	`

	if _, err := d.db.Exec(schema); err != nil {
		return err
	}

	return d.seedReferenceData()
}

// seedReferenceData inserts the fixed unit and meal catalogs. Idempotent:
// existing rows are left untouched.
func (d *DB) seedReferenceData() error {
	for _, u := range models.SeedUnits {
		_, err := d.db.Exec(
			"INSERT OR IGNORE INTO units (id, symbol) VALUES (?, ?)",
			u.ID, u.Symbol,
		)
		if err != nil {
			return fmt.Errorf("seed unit %s: %w", u.Symbol, err)
		}
	}

	for _, m := range models.AllMeals {
		_, err := d.db.Exec(
			"INSERT OR IGNORE INTO meals (id, name) VALUES (?, ?)",
			int64(m.ID), m.Name,
		)
		if err != nil {
			return fmt.Errorf("seed meal %s: %w", m.Name, err)
		}
	}

	return nil
}
