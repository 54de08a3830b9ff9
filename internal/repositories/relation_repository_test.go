package repositories

import (
	"errors"
	"testing"

	"github.com/foodgram-go/backend/internal/apperrors"
	"github.com/foodgram-go/backend/internal/models"
)

func TestFavoriteAddTwice(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Borscht")
	repo := NewFavoriteRepository(db)

	if err := repo.Add(user.ID, recipe.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	err := repo.Add(user.ID, recipe.ID)
	if !errors.Is(err, apperrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists on second add, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Favorite{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one favorite row, got %d", count)
	}
}

func TestFavoriteRemoveMissing(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Borscht")
	repo := NewFavoriteRepository(db)

	err := repo.Remove(user.ID, recipe.ID)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound removing a favorite that was never added, got %v", err)
	}
}

func TestFavoriteRemove(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Borscht")
	repo := NewFavoriteRepository(db)

	if err := repo.Add(user.ID, recipe.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.Remove(user.ID, recipe.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	exists, err := repo.Exists(user.ID, recipe.ID)
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists {
		t.Fatal("favorite still present after remove")
	}
}

func TestShoppingCartAddTwice(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "bob")
	recipe := createTestRecipe(t, db, user.ID, "Pelmeni")
	repo := NewShoppingCartRepository(db)

	if err := repo.Add(user.ID, recipe.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := repo.Add(user.ID, recipe.ID); !errors.Is(err, apperrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists on second add, got %v", err)
	}
}

// A concurrent add can slip past the application-level check; the unique
// index then fires and must surface as ErrConstraintViolation. Simulated by
// inserting the row directly, bypassing the repository check.
func TestFavoriteConstraintBackstop(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Borscht")

	if err := db.Create(&models.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error; err != nil {
		t.Fatalf("direct insert failed: %v", err)
	}
	err := db.Create(&models.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error
	if err == nil {
		t.Fatal("expected the unique index to reject the duplicate row")
	}

	var count int64
	if err := db.Model(&models.Favorite{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one favorite row after the race, got %d", count)
	}
}

// Favorites and cart entries are independent relations: the same pair may
// exist in both.
func TestRelationsAreIndependent(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Borscht")
	favorites := NewFavoriteRepository(db)
	cart := NewShoppingCartRepository(db)

	if err := favorites.Add(user.ID, recipe.ID); err != nil {
		t.Fatalf("favorite add failed: %v", err)
	}
	if err := cart.Add(user.ID, recipe.ID); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}

	ids, err := cart.RecipeIDs(user.ID)
	if err != nil {
		t.Fatalf("cart RecipeIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != recipe.ID {
		t.Fatalf("unexpected cart recipe ids: %v", ids)
	}
}
