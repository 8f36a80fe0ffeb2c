package repositories

import (
	"fmt"

	"flicks/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// Create inserts the favorite with ON CONFLICT DO NOTHING on the unique
// (user_id, movie_id) index. Zero rows affected means the pair already
// existed, including the case where a concurrent request inserted it between
// any earlier read and this write.
func (r *GORMFavoriteRepository) Create(favorite *models.Favorite) error {
	if favorite.ID == "" {
		favorite.ID = uuid.New().String()
	}
	res := r.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoNothing: true,
	}).Create(favorite)
	if res.Error != nil {
		return fmt.Errorf("failed to create favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrDuplicate
	}
	return nil
}

// DeleteByUserAndExternalID removes the favorite for (user, external movie id).
// A missing row is a no-op success.
func (r *GORMFavoriteRepository) DeleteByUserAndExternalID(userID, externalID string) error {
	res := r.db.Delete(&models.Favorite{}, "user_id = ? AND external_id = ?", userID, externalID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", res.Error)
	}
	return nil
}

// ListByUser returns all favorites for the user, most recently created first.
func (r *GORMFavoriteRepository) ListByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Movie").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for user %s: %w", userID, err)
	}
	return favorites, nil
}
