// ABOUTME: Unit model and the seeded measurement unit catalog.
// ABOUTME: Units are immutable reference data created at database setup.
package models

// Unit is a measurement unit a nutritable can be defined against.
type Unit struct {
	ID     int64  `json:"id" yaml:"id"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// SeedUnits is the fixed unit catalog, seeded into the database at setup.
// IDs are stable; code and stored rows agree on them.
var SeedUnits = []Unit{
	{ID: 1, Symbol: "g"},
	{ID: 2, Symbol: "ml"},
	{ID: 3, Symbol: "lb"},
	{ID: 4, Symbol: "tsp"},
	{ID: 5, Symbol: "tbsp"},
	{ID: 6, Symbol: "cup"},
	{ID: 7, Symbol: "oz"},
	{ID: 8, Symbol: "unit"},
}

// UnitBySymbol looks up a seeded unit by its symbol.
func UnitBySymbol(symbol string) (Unit, bool) {
	for _, u := range SeedUnits {
		if u.Symbol == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// IsValidUnitSymbol checks if a string names a seeded unit.
func IsValidUnitSymbol(symbol string) bool {
	_, ok := UnitBySymbol(symbol)
	return ok
}
