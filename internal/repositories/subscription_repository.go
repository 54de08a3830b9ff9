package repositories

import (
	"errors"

	"github.com/foodgram-go/backend/internal/apperrors"
	"github.com/foodgram-go/backend/internal/models"
	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for follower/author relations
type SubscriptionRepository interface {
	Follow(userID, authorID uint) error
	Unfollow(userID, authorID uint) error
	IsFollowing(userID, authorID uint) (bool, error)
	GetSubscriptions(userID uint, limit, offset int) ([]models.Subscription, error)
}

// PostgresSubscriptionRepository implements SubscriptionRepository for PostgreSQL
type PostgresSubscriptionRepository struct {
	db *gorm.DB
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository
func NewPostgresSubscriptionRepository(db *gorm.DB) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{db: db}
}

// Follow subscribes userID to authorID. Self-subscription is rejected before
// any storage access; the duplicate check and insert run in one transaction
// with the unique index on (user_id, author_id) as the race backstop.
func (r *PostgresSubscriptionRepository) Follow(userID, authorID uint) error {
	if userID == authorID {
		return apperrors.ErrSelfFollow
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Subscription{}).
			Where("user_id = ? AND author_id = ?", userID, authorID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrAlreadyExists
		}
		sub := &models.Subscription{UserID: userID, AuthorID: authorID}
		if err := tx.Create(sub).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrConstraintViolation
			}
			return err
		}
		return nil
	})
}

// Unfollow removes the subscription; absence is an error
func (r *PostgresSubscriptionRepository) Unfollow(userID, authorID uint) error {
	res := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&models.Subscription{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresSubscriptionRepository) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Subscription{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetSubscriptions lists the user's subscriptions ordered by subscription id
// ascending, with the followed author preloaded. Limit and offset page the
// listing in the query; zero values mean no paging.
func (r *PostgresSubscriptionRepository) GetSubscriptions(userID uint, limit, offset int) ([]models.Subscription, error) {
	query := r.db.Preload("Author").Where("user_id = ?", userID).Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	var subs []models.Subscription
	err := query.Find(&subs).Error
	return subs, err
}
