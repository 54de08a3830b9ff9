package repositories

import (
	"github.com/foodgram-go/backend/internal/models"
	"gorm.io/gorm"
)

// ShoppingListRepository aggregates a user's queued recipes into a
// deduplicated shopping list
type ShoppingListRepository interface {
	Aggregate(userID uint) ([]models.ShoppingListItem, error)
}

// PostgresShoppingListRepository implements ShoppingListRepository for PostgreSQL
type PostgresShoppingListRepository struct {
	db *gorm.DB
}

// NewPostgresShoppingListRepository creates a new PostgresShoppingListRepository
func NewPostgresShoppingListRepository(db *gorm.DB) *PostgresShoppingListRepository {
	return &PostgresShoppingListRepository{db: db}
}

// Aggregate joins the user's shopping cart to the ingredient rows of the
// queued recipes and sums amounts grouped by (name, measurement_unit).
// Grouping is by the displayed text, not the ingredient id: catalog rows
// duplicated under the same name and unit merge into one line. The sum is a
// 64-bit integer since per-row amounts are capped at 999 but sums across
// many recipes are not. An empty cart yields an empty slice, not an error.
func (r *PostgresShoppingListRepository) Aggregate(userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := r.db.Table("ingredient_recipes").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_recipes.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = ingredient_recipes.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = ingredient_recipes.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name, ingredients.measurement_unit").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
