package repositories

import (
	"github.com/foodgram-go/backend/internal/models"
	"gorm.io/gorm"
)

// IngredientRepository defines the interface for ingredient catalog reads
type IngredientRepository interface {
	GetIngredients(namePrefix string) ([]models.Ingredient, error)
	GetIngredientByID(id uint) (*models.Ingredient, error)
}

// PostgresIngredientRepository implements IngredientRepository for PostgreSQL
type PostgresIngredientRepository struct {
	db *gorm.DB
}

// NewPostgresIngredientRepository creates a new PostgresIngredientRepository
func NewPostgresIngredientRepository(db *gorm.DB) *PostgresIngredientRepository {
	return &PostgresIngredientRepository{db: db}
}

// GetIngredients lists the catalog, optionally narrowed by a case-insensitive
// name prefix. The filter runs in the query, not in memory.
func (r *PostgresIngredientRepository) GetIngredients(namePrefix string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := r.db.Order("id")
	if namePrefix != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", namePrefix+"%")
	}
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *PostgresIngredientRepository) GetIngredientByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}
