// ABOUTME: Food model for the food catalog.
// ABOUTME: Foods are soft-deletable; names are unique among live foods only.
package models

// Food is a named ingredient or dish the user can log.
//
// IsDeleted marks a food that is still referenced by journal entries but
// hidden from the catalog. Unreferenced foods are removed outright instead.
type Food struct {
	ID        int64  `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	IsDeleted bool   `json:"is_deleted" yaml:"is_deleted"`
}
