package repositories

import (
	"errors"

	"github.com/foodgram-go/backend/internal/apperrors"
	"github.com/foodgram-go/backend/internal/models"
	"gorm.io/gorm"
)

// RelationRepository is the shared contract for the (user, recipe) pair
// relations: favorites and shopping cart entries. Both enforce at most one
// row per pair, with a storage-level unique index as the backstop.
type RelationRepository interface {
	Add(userID, recipeID uint) error
	Remove(userID, recipeID uint) error
	Exists(userID, recipeID uint) (bool, error)
	RecipeIDs(userID uint) ([]uint, error)
}

// gormRelationRepository implements RelationRepository for any relation row
// type. Favorite and ShoppingCart are structurally identical but nominally
// distinct, so the add/remove/uniqueness logic lives here once.
type gormRelationRepository[T any] struct {
	db     *gorm.DB
	newRow func(userID, recipeID uint) *T
}

// NewFavoriteRepository creates the favorites relation store
func NewFavoriteRepository(db *gorm.DB) RelationRepository {
	return &gormRelationRepository[models.Favorite]{
		db: db,
		newRow: func(userID, recipeID uint) *models.Favorite {
			return &models.Favorite{UserID: userID, RecipeID: recipeID}
		},
	}
}

// NewShoppingCartRepository creates the shopping cart relation store
func NewShoppingCartRepository(db *gorm.DB) RelationRepository {
	return &gormRelationRepository[models.ShoppingCart]{
		db: db,
		newRow: func(userID, recipeID uint) *models.ShoppingCart {
			return &models.ShoppingCart{UserID: userID, RecipeID: recipeID}
		},
	}
}

// Add inserts the pair. The duplicate check and the insert run in one
// transaction; if a concurrent insert slips past the check, the unique index
// fires and the error surfaces as ErrConstraintViolation.
func (r *gormRelationRepository[T]) Add(userID, recipeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrAlreadyExists
		}
		if err := tx.Create(r.newRow(userID, recipeID)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrConstraintViolation
			}
			return err
		}
		return nil
	})
}

// Remove deletes the pair; removing an absent pair is an error, not a no-op
func (r *gormRelationRepository[T]) Remove(userID, recipeID uint) error {
	res := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *gormRelationRepository[T]) Exists(userID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.Model(new(T)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RecipeIDs returns the ids of all recipes the user has in this relation
func (r *gormRelationRepository[T]) RecipeIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(new(T)).Where("user_id = ?", userID).Order("id").Pluck("recipe_id", &ids).Error
	return ids, err
}
