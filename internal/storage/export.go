// ABOUTME: Export and import functionality for the nutrition journal.
// ABOUTME: Supports JSON and YAML snapshot formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nosh/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full snapshot format for journal data. Foods
// and nutritables include soft-deleted rows so imported entries keep
// resolving.
type ExportData struct {
	SnapshotID  uuid.UUID            `json:"snapshot_id" yaml:"snapshot_id"`
	Version     string               `json:"version" yaml:"version"`
	ExportedAt  time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool        string               `json:"tool" yaml:"tool"`
	Units       []models.Unit        `json:"units" yaml:"units"`
	Foods       []*models.Food       `json:"foods" yaml:"foods"`
	Nutritables []*models.Nutritable `json:"nutritables" yaml:"nutritables"`
	Entries     []models.Entry       `json:"entries" yaml:"entries"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	units, err := d.ListUnits()
	if err != nil {
		return nil, fmt.Errorf("export units: %w", err)
	}

	foods, err := d.ListFoods(true)
	if err != nil {
		return nil, fmt.Errorf("export foods: %w", err)
	}

	var tables []*models.Nutritable
	rows, err := d.db.Query(`
		SELECT ` + nutritableColumns + `
		FROM nutritables AS n
		INNER JOIN units AS u ON n.unit_id = u.id
		ORDER BY n.id`)
	if err != nil {
		return nil, fmt.Errorf("export nutritables: %w", err)
	}
	defer rows.Close()
	tables, err = scanNutritables(rows)
	if err != nil {
		return nil, fmt.Errorf("export nutritables: %w", err)
	}

	entryRows, err := d.db.Query("SELECT " + entryColumns + " FROM entries ORDER BY date, meal_id, id")
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}
	defer entryRows.Close()
	entries, err := scanEntries(entryRows)
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}

	return &ExportData{
		SnapshotID:  uuid.New(),
		Version:     "1.0",
		ExportedAt:  time.Now(),
		Tool:        "nosh",
		Units:       units,
		Foods:       foods,
		Nutritables: tables,
		Entries:     entries,
	}, nil
}

// ImportData imports a snapshot into the database, preserving ids. The
// destination should be empty apart from the seeded reference tables.
func (d *DB) ImportData(data *ExportData) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer tx.Rollback()

	for _, f := range data.Foods {
		_, err := tx.Exec(
			"INSERT INTO foods (id, name, is_deleted) VALUES (?, ?, ?)",
			f.ID, f.Name, f.IsDeleted,
		)
		if err != nil {
			return fmt.Errorf("import food %d: %w", f.ID, err)
		}
	}

	for _, n := range data.Nutritables {
		_, err := tx.Exec(`
			INSERT INTO nutritables (id, food_id, unit_id, base_measure, kcals, carbs, fats, protein, is_deleted)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			n.ID, n.FoodID, n.Unit.ID, n.BaseMeasure, n.Kcals, n.Carbs, n.Fats, n.Protein, n.IsDeleted,
		)
		if err != nil {
			return fmt.Errorf("import nutritable %d: %w", n.ID, err)
		}
	}

	for _, e := range data.Entries {
		_, err := tx.Exec(`
			INSERT INTO entries (id, food_id, nutritable_id, date, amount, unit_id, meal_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.FoodID, e.NutritableID, models.Day(e.Date).Format(models.DateOnly),
			e.Amount, e.UnitID, int64(e.MealID),
		)
		if err != nil {
			return fmt.Errorf("import entry %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	d.notifyChange("foods")
	d.notifyChange("nutritables")
	d.notifyChange("entries")
	return nil
}

// MarshalExport serializes a snapshot in the requested format: "json",
// "yaml", or "markdown". Markdown is a human-readable rendering only;
// UnmarshalExport cannot read it back.
func MarshalExport(data *ExportData, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(data, "", "  ")
	case "yaml":
		return yaml.Marshal(data)
	case "markdown", "md":
		return marshalMarkdown(data), nil
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// marshalMarkdown renders the snapshot as a readable document: the food
// catalog with its tables, then the journal grouped by date and meal.
func marshalMarkdown(data *ExportData) []byte {
	units := make(map[int64]string, len(data.Units))
	for _, u := range data.Units {
		units[u.ID] = u.Symbol
	}
	foods := make(map[int64]*models.Food, len(data.Foods))
	for _, f := range data.Foods {
		foods[f.ID] = f
	}
	tablesByFood := make(map[int64][]*models.Nutritable, len(data.Foods))
	for _, n := range data.Nutritables {
		tablesByFood[n.FoodID] = append(tablesByFood[n.FoodID], n)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Nutrition journal\n\n")
	fmt.Fprintf(&b, "Exported %s (snapshot %s).\n", data.ExportedAt.Format(time.RFC3339), data.SnapshotID)

	b.WriteString("\n## Foods\n")
	for _, f := range data.Foods {
		note := ""
		if f.IsDeleted {
			note = " (deleted)"
		}
		fmt.Fprintf(&b, "\n- **%s**%s\n", f.Name, note)
		for _, n := range tablesByFood[f.ID] {
			fmt.Fprintf(&b, "  - per %g %s: %g kcal, %g protein, %g carbs, %g fat\n",
				n.BaseMeasure, n.Unit.Symbol, n.Kcals, n.Protein, n.Carbs, n.Fats)
		}
	}

	b.WriteString("\n## Journal\n")
	lastDate := ""
	for _, e := range data.Entries {
		date := models.Day(e.Date).Format(models.DateOnly)
		if date != lastDate {
			fmt.Fprintf(&b, "\n### %s\n\n", date)
			lastDate = date
		}
		meal, err := models.MealKey(e.MealID)
		if err != nil {
			meal = "unknown"
		}
		name := fmt.Sprintf("food %d", e.FoodID)
		if f, ok := foods[e.FoodID]; ok {
			name = f.Name
		}
		fmt.Fprintf(&b, "- %s: %g %s %s\n", meal, e.Amount, units[e.UnitID], name)
	}

	return []byte(b.String())
}

// UnmarshalExport parses a snapshot, trying JSON first and YAML second.
func UnmarshalExport(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err == nil {
		return &data, nil
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &data, nil
}
