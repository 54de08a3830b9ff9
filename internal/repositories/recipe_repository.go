package repositories

import (
	"errors"

	"github.com/foodgram-go/backend/internal/apperrors"
	"github.com/foodgram-go/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	CreateRecipe(recipe *models.Recipe, ingredients []models.IngredientAmountRequest, tagIDs []uint) error
	UpdateRecipe(recipe *models.Recipe, ingredients *[]models.IngredientAmountRequest, tagIDs *[]uint) error
	GetRecipeByID(id uint) (*models.Recipe, error)
	GetRecipes(filter models.RecipeFilter) ([]models.Recipe, error)
	DeleteRecipe(id uint) error
	CountByAuthor(authorID uint) (int64, error)
	GetRecipesByAuthor(authorID uint, limit int) ([]models.Recipe, error)
}

// PostgresRecipeRepository implements RecipeRepository for PostgreSQL
type PostgresRecipeRepository struct {
	db *gorm.DB
}

// NewPostgresRecipeRepository creates a new PostgresRecipeRepository
func NewPostgresRecipeRepository(db *gorm.DB) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

// validateTags resolves the submitted tag ids against the catalog.
// The set must be non-empty and every id must exist.
func validateTags(tx *gorm.DB, tagIDs []uint) ([]models.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, apperrors.ErrEmptyTagSet
	}
	unique := make(map[uint]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		unique[id] = struct{}{}
	}
	var tags []models.Tag
	if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		return nil, apperrors.ErrUnknownTag
	}
	return tags, nil
}

// validateIngredients checks the submitted ingredient set: non-empty, no
// ingredient referenced twice within one payload, every id in the catalog.
func validateIngredients(tx *gorm.DB, items []models.IngredientAmountRequest) error {
	if len(items) == 0 {
		return apperrors.ErrEmptyIngredientSet
	}
	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			return apperrors.ErrDuplicateIngredient
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}
	var count int64
	if err := tx.Model(&models.Ingredient{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return apperrors.ErrNotFound
	}
	return nil
}

func insertIngredientRows(tx *gorm.DB, recipeID uint, items []models.IngredientAmountRequest) error {
	rows := make([]models.IngredientRecipe, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.IngredientRecipe{
			RecipeID:     recipeID,
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}
	return tx.Create(&rows).Error
}

// CreateRecipe validates the tag and ingredient sets and persists the recipe
// with its ingredient rows and tag associations as one transaction.
func (r *PostgresRecipeRepository) CreateRecipe(recipe *models.Recipe, ingredients []models.IngredientAmountRequest, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		tags, err := validateTags(tx, tagIDs)
		if err != nil {
			return err
		}
		if err := validateIngredients(tx, ingredients); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if err := insertIngredientRows(tx, recipe.ID, ingredients); err != nil {
			return err
		}
		return tx.Model(recipe).Association("Tags").Replace(&tags)
	})
}

// UpdateRecipe persists scalar field changes and, when the payload carried
// them, fully replaces the ingredient rows and the tag set. Old ingredient
// rows are deleted and reinserted, never diffed. A nil set means the field
// was omitted and the existing rows stay untouched. Everything runs in one
// transaction so a mid-write failure leaves the prior state intact.
func (r *PostgresRecipeRepository) UpdateRecipe(recipe *models.Recipe, ingredients *[]models.IngredientAmountRequest, tagIDs *[]uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if tagIDs != nil {
			tags, err := validateTags(tx, *tagIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}
		if ingredients != nil {
			if err := validateIngredients(tx, *ingredients); err != nil {
				return err
			}
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientRecipe{}).Error; err != nil {
				return err
			}
			if err := insertIngredientRows(tx, recipe.ID, *ingredients); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(recipe).Error
	})
}

// GetRecipeByID retrieves a recipe with its author, tags and ingredients
func (r *PostgresRecipeRepository) GetRecipeByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Author").Preload("Tags").Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipes lists recipes narrowed by the filter. Author, tag, favorite and
// cart filters are all pushed into the query rather than applied in memory.
func (r *PostgresRecipeRepository) GetRecipes(filter models.RecipeFilter) ([]models.Recipe, error) {
	query := r.db.Model(&models.Recipe{}).
		Preload("Author").Preload("Tags").Preload("Ingredients.Ingredient").
		Order("recipes.id DESC")

	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs).
			Distinct("recipes.*")
	}
	if filter.FavoritedBy != 0 {
		query = query.Where("recipes.id IN (?)",
			r.db.Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", filter.FavoritedBy),
		)
	}
	if filter.InCartOf != 0 {
		query = query.Where("recipes.id IN (?)",
			r.db.Model(&models.ShoppingCart{}).Select("recipe_id").Where("user_id = ?", filter.InCartOf),
		)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteRecipe removes the recipe and its dependent rows
func (r *PostgresRecipeRepository) DeleteRecipe(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{
			&models.IngredientRecipe{},
			&models.Favorite{},
			&models.ShoppingCart{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		recipe := models.Recipe{ID: id}
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

func (r *PostgresRecipeRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// GetRecipesByAuthor lists an author's recipes, newest first, optionally capped
func (r *PostgresRecipeRepository) GetRecipesByAuthor(authorID uint, limit int) ([]models.Recipe, error) {
	query := r.db.Where("author_id = ?", authorID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// IsNotFound reports whether err is a missing-record error from either the
// domain or the storage layer.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, apperrors.ErrNotFound)
}
