// ABOUTME: Nutritable CRUD for SQLite storage.
// ABOUTME: Enforces at most one live table per (food, unit) pair.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/nosh/internal/models"
)

// NutritableInput holds the writable fields of a nutritional table.
type NutritableInput struct {
	FoodID      int64
	UnitID      int64
	BaseMeasure float64
	Kcals       float64
	Carbs       float64
	Fats        float64
	Protein     float64
}

func validateNutritableInput(in NutritableInput) error {
	if in.BaseMeasure <= 0 {
		return fmt.Errorf("base measure must be positive")
	}
	for name, v := range map[string]float64{
		"kcals": in.Kcals, "carbs": in.Carbs, "fats": in.Fats, "protein": in.Protein,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

// CreateNutritable adds a nutritional table for a food. A food can hold at
// most one live table per unit; the check runs in the same transaction as
// the insert (a partial unique index backs it up at the schema level).
func (d *DB) CreateNutritable(in NutritableInput) (*models.Nutritable, error) {
	if err := validateNutritableInput(in); err != nil {
		return nil, fmt.Errorf("create nutritable: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create nutritable: %w", err)
	}
	defer tx.Rollback()

	var foodExists int
	err = tx.QueryRow(
		"SELECT COUNT(*) FROM foods WHERE id = ? AND is_deleted = 0", in.FoodID,
	).Scan(&foodExists)
	if err != nil {
		return nil, fmt.Errorf("create nutritable: %w", err)
	}
	if foodExists == 0 {
		return nil, fmt.Errorf("create nutritable: food not found: %d", in.FoodID)
	}

	var symbol string
	err = tx.QueryRow("SELECT symbol FROM units WHERE id = ?", in.UnitID).Scan(&symbol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("create nutritable: unit not found: %d", in.UnitID)
		}
		return nil, fmt.Errorf("create nutritable: %w", err)
	}

	var dup int
	err = tx.QueryRow(
		"SELECT COUNT(*) FROM nutritables WHERE food_id = ? AND unit_id = ? AND is_deleted = 0",
		in.FoodID, in.UnitID,
	).Scan(&dup)
	if err != nil {
		return nil, fmt.Errorf("create nutritable: %w", err)
	}
	if dup > 0 {
		return nil, fmt.Errorf("create nutritable: food %d already has a table for unit %s", in.FoodID, symbol)
	}

	result, err := tx.Exec(`
		INSERT INTO nutritables (food_id, unit_id, base_measure, kcals, carbs, fats, protein, is_deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0)`,
		in.FoodID, in.UnitID, in.BaseMeasure, in.Kcals, in.Carbs, in.Fats, in.Protein,
	)
	if err != nil {
		return nil, fmt.Errorf("create nutritable: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create nutritable: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create nutritable: %w", err)
	}
	d.notifyChange("nutritables")

	return &models.Nutritable{
		ID:          id,
		FoodID:      in.FoodID,
		Unit:        models.Unit{ID: in.UnitID, Symbol: symbol},
		BaseMeasure: in.BaseMeasure,
		Kcals:       in.Kcals,
		Carbs:       in.Carbs,
		Fats:        in.Fats,
		Protein:     in.Protein,
	}, nil
}

const nutritableColumns = `
	n.id, n.food_id, u.id, u.symbol, n.base_measure,
	n.kcals, n.carbs, n.fats, n.protein, n.is_deleted`

// GetNutritable retrieves a nutritional table by id, deleted or not.
func (d *DB) GetNutritable(id int64) (*models.Nutritable, error) {
	query := `
		SELECT ` + nutritableColumns + `
		FROM nutritables AS n
		INNER JOIN units AS u ON n.unit_id = u.id
		WHERE n.id = ?`
	n, err := scanNutritable(d.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("nutritable not found: %d", id)
		}
		return nil, err
	}
	return n, nil
}

// ListNutritablesByFood returns a food's live nutritional tables.
func (d *DB) ListNutritablesByFood(foodID int64) ([]*models.Nutritable, error) {
	query := `
		SELECT ` + nutritableColumns + `
		FROM nutritables AS n
		INNER JOIN units AS u ON n.unit_id = u.id
		WHERE n.food_id = ? AND n.is_deleted = 0
		ORDER BY u.id`
	rows, err := d.db.Query(query, foodID)
	if err != nil {
		return nil, fmt.Errorf("list nutritables: %w", err)
	}
	defer rows.Close()
	return scanNutritables(rows)
}

// GetNutritablesByIDs resolves a set of nutritable ids, including
// soft-deleted tables so old journal entries still scale correctly. IDs
// with no matching row are simply absent from the result.
func (d *DB) GetNutritablesByIDs(ids []int64) ([]*models.Nutritable, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := "?"
	args := []interface{}{ids[0]}
	for _, id := range ids[1:] {
		placeholders += ", ?"
		args = append(args, id)
	}

	query := `
		SELECT ` + nutritableColumns + `
		FROM nutritables AS n
		INNER JOIN units AS u ON n.unit_id = u.id
		WHERE n.id IN (` + placeholders + `)`
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("get nutritables: %w", err)
	}
	defer rows.Close()
	return scanNutritables(rows)
}

// UpdateNutritable rewrites a live table's measurements. The unit is fixed
// at creation; changing units means creating a new table.
func (d *DB) UpdateNutritable(id int64, in NutritableInput) error {
	if err := validateNutritableInput(in); err != nil {
		return fmt.Errorf("update nutritable: %w", err)
	}

	result, err := d.db.Exec(`
		UPDATE nutritables
		SET base_measure = ?, kcals = ?, carbs = ?, fats = ?, protein = ?
		WHERE id = ? AND is_deleted = 0`,
		in.BaseMeasure, in.Kcals, in.Carbs, in.Fats, in.Protein, id,
	)
	if err != nil {
		return fmt.Errorf("update nutritable: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update nutritable: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("nutritable not found: %d", id)
	}

	d.notifyChange("nutritables")
	return nil
}

// DeleteNutritable removes a nutritional table: soft when journal entries
// reference it, hard when nothing does. Check and delete share one
// transaction.
func (d *DB) DeleteNutritable(id int64) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("delete nutritable: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT COUNT(*) FROM nutritables WHERE id = ?", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("delete nutritable: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("nutritable not found: %d", id)
	}

	var refs int
	err = tx.QueryRow("SELECT COUNT(*) FROM entries WHERE nutritable_id = ?", id).Scan(&refs)
	if err != nil {
		return fmt.Errorf("delete nutritable: %w", err)
	}

	if refs > 0 {
		_, err = tx.Exec("UPDATE nutritables SET is_deleted = 1 WHERE id = ?", id)
	} else {
		_, err = tx.Exec("DELETE FROM nutritables WHERE id = ?", id)
	}
	if err != nil {
		return fmt.Errorf("delete nutritable: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete nutritable: %w", err)
	}
	d.notifyChange("nutritables")
	return nil
}

// scanNutritable scans a single joined row into a Nutritable.
func scanNutritable(row *sql.Row) (*models.Nutritable, error) {
	var n models.Nutritable
	err := row.Scan(
		&n.ID, &n.FoodID, &n.Unit.ID, &n.Unit.Symbol, &n.BaseMeasure,
		&n.Kcals, &n.Carbs, &n.Fats, &n.Protein, &n.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// scanNutritables scans joined rows into a slice of Nutritables.
func scanNutritables(rows *sql.Rows) ([]*models.Nutritable, error) {
	var tables []*models.Nutritable
	for rows.Next() {
		var n models.Nutritable
		err := rows.Scan(
			&n.ID, &n.FoodID, &n.Unit.ID, &n.Unit.Symbol, &n.BaseMeasure,
			&n.Kcals, &n.Carbs, &n.Fats, &n.Protein, &n.IsDeleted,
		)
		if err != nil {
			return nil, fmt.Errorf("scan nutritable: %w", err)
		}
		tables = append(tables, &n)
	}
	return tables, rows.Err()
}
