// ABOUTME: Repository interface for the nutrition journal store.
// ABOUTME: Defines the contract for units, foods, nutritables, and entries.
package storage

import (
	"time"

	"github.com/harperreed/nosh/internal/models"
)

// Repository defines the storage interface for the nutrition journal.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Unit catalog (seeded reference data)
	ListUnits() ([]models.Unit, error)
	GetUnit(id int64) (models.Unit, error)

	// Food catalog
	CreateFood(name string) (*models.Food, error)
	GetFood(id int64) (*models.Food, error)
	GetFoodByName(name string) (*models.Food, error)
	ListFoods(includeDeleted bool) ([]*models.Food, error)
	RenameFood(id int64, name string) error
	DeleteFood(id int64) error

	// Nutritional tables
	CreateNutritable(in NutritableInput) (*models.Nutritable, error)
	GetNutritable(id int64) (*models.Nutritable, error)
	ListNutritablesByFood(foodID int64) ([]*models.Nutritable, error)
	GetNutritablesByIDs(ids []int64) ([]*models.Nutritable, error)
	UpdateNutritable(id int64, in NutritableInput) error
	DeleteNutritable(id int64) error

	// Journal entries
	CreateEntry(in EntryInput) (*models.Entry, error)
	ListEntriesByDate(date time.Time) ([]models.Entry, error)
	ListEntriesByMealAndDate(date time.Time, mealID models.MealID) ([]models.Entry, error)
	DeleteEntry(id int64) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
