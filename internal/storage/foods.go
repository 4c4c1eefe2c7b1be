// ABOUTME: Food catalog CRUD for SQLite storage.
// ABOUTME: Deletion is soft when entries reference the food, hard otherwise.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/nosh/internal/models"
)

// CreateFood adds a food to the catalog. The name must be unique among
// non-deleted foods; soft-deleted foods do not block reuse of a name.
func (d *DB) CreateFood(name string) (*models.Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("create food: name cannot be empty")
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRow(
		"SELECT COUNT(*) FROM foods WHERE name = ? COLLATE NOCASE AND is_deleted = 0",
		name,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("create food: a food named %q already exists", name)
	}

	result, err := tx.Exec("INSERT INTO foods (name, is_deleted) VALUES (?, 0)", name)
	if err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	d.notifyChange("foods")

	return &models.Food{ID: id, Name: name}, nil
}

// GetFood retrieves a food by id, deleted or not.
func (d *DB) GetFood(id int64) (*models.Food, error) {
	var f models.Food
	err := d.db.QueryRow(
		"SELECT id, name, is_deleted FROM foods WHERE id = ?", id,
	).Scan(&f.ID, &f.Name, &f.IsDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("food not found: %d", id)
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &f, nil
}

// GetFoodByName retrieves a live food by its name (case-insensitive).
func (d *DB) GetFoodByName(name string) (*models.Food, error) {
	var f models.Food
	err := d.db.QueryRow(
		"SELECT id, name, is_deleted FROM foods WHERE name = ? COLLATE NOCASE AND is_deleted = 0",
		strings.TrimSpace(name),
	).Scan(&f.ID, &f.Name, &f.IsDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("food not found: %s", name)
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &f, nil
}

// ListFoods returns the food catalog sorted by name. Soft-deleted foods are
// excluded unless includeDeleted is set.
func (d *DB) ListFoods(includeDeleted bool) ([]*models.Food, error) {
	query := "SELECT id, name, is_deleted FROM foods"
	if !includeDeleted {
		query += " WHERE is_deleted = 0"
	}
	query += " ORDER BY name COLLATE NOCASE"

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	var foods []*models.Food
	for rows.Next() {
		var f models.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, &f)
	}
	return foods, rows.Err()
}

// RenameFood changes a live food's name, subject to the same uniqueness
// rule as CreateFood.
func (d *DB) RenameFood(id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("rename food: name cannot be empty")
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("rename food: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRow(
		"SELECT COUNT(*) FROM foods WHERE name = ? COLLATE NOCASE AND is_deleted = 0 AND id != ?",
		name, id,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("rename food: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("rename food: a food named %q already exists", name)
	}

	result, err := tx.Exec(
		"UPDATE foods SET name = ? WHERE id = ? AND is_deleted = 0", name, id,
	)
	if err != nil {
		return fmt.Errorf("rename food: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rename food: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("food not found: %d", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("rename food: %w", err)
	}
	d.notifyChange("foods")
	return nil
}

// DeleteFood removes a food from the catalog. If any journal entry
// references it the food is soft-deleted so history keeps resolving;
// otherwise the row and its nutritables are removed for good. The reference
// check and the delete run in one transaction.
func (d *DB) DeleteFood(id int64) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT COUNT(*) FROM foods WHERE id = ?", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("food not found: %d", id)
	}

	var refs int
	err = tx.QueryRow("SELECT COUNT(*) FROM entries WHERE food_id = ?", id).Scan(&refs)
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}

	if refs > 0 {
		_, err = tx.Exec("UPDATE foods SET is_deleted = 1 WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("delete food: %w", err)
		}
		_, err = tx.Exec("UPDATE nutritables SET is_deleted = 1 WHERE food_id = ?", id)
		if err != nil {
			return fmt.Errorf("delete food: %w", err)
		}
	} else {
		if _, err = tx.Exec("DELETE FROM nutritables WHERE food_id = ?", id); err != nil {
			return fmt.Errorf("delete food: %w", err)
		}
		if _, err = tx.Exec("DELETE FROM foods WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete food: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	d.notifyChange("foods")
	d.notifyChange("nutritables")
	return nil
}
