package models

import "time"

// Recipe is a published recipe with its tag set and per-recipe ingredient amounts
type Recipe struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	AuthorID    uint               `json:"-" gorm:"index;not null"`
	Author      User               `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Name        string             `json:"name" gorm:"size:200;uniqueIndex"`
	Image       string             `json:"image"` // reference to the stored image, encoding is out of scope
	Text        string             `json:"text"`
	CookingTime int                `json:"cooking_time" gorm:"not null"` // minutes, 1..48
	Tags        []Tag              `json:"tags" gorm:"many2many:recipe_tags"`
	Ingredients []IngredientRecipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// IngredientRecipe links a recipe to an ingredient with the per-recipe amount.
// Rows are replaced wholesale whenever the recipe's ingredient list is edited.
type IngredientRecipe struct {
	ID           uint       `json:"-" gorm:"primaryKey"`
	RecipeID     uint       `json:"-" gorm:"uniqueIndex:idx_recipe_ingredient;not null"`
	IngredientID uint       `json:"id" gorm:"uniqueIndex:idx_recipe_ingredient;not null"`
	Ingredient   Ingredient `json:"-" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Amount       int        `json:"amount" gorm:"not null"` // 1..999
}

// IngredientAmountRequest is one (ingredient id, amount) pair of a recipe write payload
type IngredientAmountRequest struct {
	ID     uint `json:"id" validate:"required"`
	Amount int  `json:"amount" validate:"required,min=1,max=999"`
}

// CreateRecipeRequest defines the request body for publishing a recipe
type CreateRecipeRequest struct {
	Name        string                    `json:"name" validate:"required,min=1,max=200"`
	Text        string                    `json:"text" validate:"required"`
	Image       string                    `json:"image"`
	CookingTime int                       `json:"cooking_time" validate:"required,min=1,max=48"`
	Tags        []uint                    `json:"tags"`
	Ingredients []IngredientAmountRequest `json:"ingredients" validate:"dive"`
}

// UpdateRecipeRequest defines the request body for editing a recipe.
// Pointer fields distinguish "omitted" from "present but empty": tag and
// ingredient sets are fully replaced only when present in the payload.
type UpdateRecipeRequest struct {
	Name        *string                    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Text        *string                    `json:"text,omitempty"`
	Image       *string                    `json:"image,omitempty"`
	CookingTime *int                       `json:"cooking_time,omitempty" validate:"omitempty,min=1,max=48"`
	Tags        *[]uint                    `json:"tags,omitempty"`
	Ingredients *[]IngredientAmountRequest `json:"ingredients,omitempty" validate:"omitempty,dive"`
}

// RecipeIngredientResponse renders one ingredient of a recipe with its amount
type RecipeIngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse is the full read representation of a recipe
type RecipeResponse struct {
	ID                uint                       `json:"id"`
	Author            UserResponse               `json:"author"`
	Name              string                     `json:"name"`
	Text              string                     `json:"text"`
	Image             string                     `json:"image"`
	CookingTime       int                        `json:"cooking_time"`
	Tags              []Tag                      `json:"tags"`
	Ingredients       []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited       bool                       `json:"is_favorited"`
	IsInShoppingCart  bool                       `json:"is_in_shopping_cart"`
}

// RecipeShortResponse is the compact recipe form used by favorite, shopping
// cart and subscription responses
type RecipeShortResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeFilter narrows recipe listings; zero values mean "no filter".
// All filtering happens at the query layer.
type RecipeFilter struct {
	AuthorID    uint
	TagSlugs    []string
	FavoritedBy uint
	InCartOf    uint
	Limit       int
	Offset      int
}
