package models

import "time"

// Favorite marks a recipe as a favorite of a user
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_recipe_favorite"`
	RecipeID  uint      `json:"recipe_id" gorm:"index;uniqueIndex:idx_user_recipe_favorite"`
	CreatedAt time.Time `json:"created_at"`
}
