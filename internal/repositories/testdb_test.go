package repositories

import (
	"fmt"
	"strings"
	"testing"

	"github.com/foodgram-go/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens an isolated in-memory database migrated with the full
// schema. Each test gets its own named database so parallel tests do not
// share state.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.IngredientRecipe{},
		&models.Subscription{},
		&models.Favorite{},
		&models.ShoppingCart{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, authorID uint, name string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Text:        "test recipe",
		CookingTime: 10,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe %s: %v", name, err)
	}
	return recipe
}

func createTestIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to create ingredient %s: %v", name, err)
	}
	return ingredient
}

func createTestTag(t *testing.T, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Color: "#" + slug, Slug: slug}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create tag %s: %v", name, err)
	}
	return tag
}

func addIngredientRow(t *testing.T, db *gorm.DB, recipeID, ingredientID uint, amount int) {
	t.Helper()
	row := &models.IngredientRecipe{RecipeID: recipeID, IngredientID: ingredientID, Amount: amount}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create ingredient row: %v", err)
	}
}
