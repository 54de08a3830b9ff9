package models

import "time"

// ShoppingCart queues a recipe for a user's shopping list.
// Structurally identical to Favorite but a distinct relation with its own
// uniqueness constraint; both share the generic relation repository.
type ShoppingCart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_recipe_cart"`
	RecipeID  uint      `json:"recipe_id" gorm:"index;uniqueIndex:idx_user_recipe_cart"`
	CreatedAt time.Time `json:"created_at"`
}
