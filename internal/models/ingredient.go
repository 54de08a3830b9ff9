package models

// Ingredient is a catalog entry. Name alone is not unique: the same name may
// exist with a different measurement unit, or even duplicated outright by lax
// data entry. The shopping list merges rows by (name, measurement_unit).
type Ingredient struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:200;index"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:200"`
}

// ShoppingListItem is one aggregated line of a user's shopping list.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"` // summed across recipes, can exceed the per-row cap
}
