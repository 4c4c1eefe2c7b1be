// ABOUTME: Unit catalog reads for SQLite storage.
// ABOUTME: Units are seeded reference data; there are no unit writers.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/nosh/internal/models"
)

// ListUnits returns the full measurement unit catalog.
func (d *DB) ListUnits() ([]models.Unit, error) {
	rows, err := d.db.Query("SELECT id, symbol FROM units ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(&u.ID, &u.Symbol); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// GetUnit retrieves a unit by id.
func (d *DB) GetUnit(id int64) (models.Unit, error) {
	var u models.Unit
	err := d.db.QueryRow("SELECT id, symbol FROM units WHERE id = ?", id).
		Scan(&u.ID, &u.Symbol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Unit{}, fmt.Errorf("unit not found: %d", id)
		}
		return models.Unit{}, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}
