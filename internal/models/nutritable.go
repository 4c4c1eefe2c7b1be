// ABOUTME: Nutritable model: a macro profile for a food per measurement unit.
// ABOUTME: Macro values are normalized to BaseMeasure units of the unit.
package models

// Nutritable is a nutritional table for a food: "per BaseMeasure units of
// Unit, this food contains these macros."
//
// A food has at most one live nutritable per unit. Soft-deleted tables stay
// around so old journal entries keep resolving.
type Nutritable struct {
	ID          int64   `json:"id" yaml:"id"`
	FoodID      int64   `json:"food_id" yaml:"food_id"`
	Unit        Unit    `json:"unit" yaml:"unit"`
	BaseMeasure float64 `json:"base_measure" yaml:"base_measure"`
	Kcals       float64 `json:"kcals" yaml:"kcals"`
	Carbs       float64 `json:"carbs" yaml:"carbs"`
	Fats        float64 `json:"fats" yaml:"fats"`
	Protein     float64 `json:"protein" yaml:"protein"`
	IsDeleted   bool    `json:"is_deleted" yaml:"is_deleted"`
}
