package repositories

import (
	"github.com/foodgram-go/backend/internal/models"
	"gorm.io/gorm"
)

// TagRepository defines the interface for tag catalog reads
type TagRepository interface {
	GetTags() ([]models.Tag, error)
	GetTagByID(id uint) (*models.Tag, error)
}

// PostgresTagRepository implements TagRepository for PostgreSQL
type PostgresTagRepository struct {
	db *gorm.DB
}

// NewPostgresTagRepository creates a new PostgresTagRepository
func NewPostgresTagRepository(db *gorm.DB) *PostgresTagRepository {
	return &PostgresTagRepository{db: db}
}

func (r *PostgresTagRepository) GetTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *PostgresTagRepository) GetTagByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}
