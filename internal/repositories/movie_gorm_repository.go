package repositories

import (
	"errors"
	"fmt"

	"flicks/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMMovieRepository is a GORM implementation of MovieRepository.
type GORMMovieRepository struct {
	db *gorm.DB
}

// NewGORMMovieRepository creates a new instance of GORMMovieRepository.
func NewGORMMovieRepository(db *gorm.DB) *GORMMovieRepository {
	return &GORMMovieRepository{
		db: db,
	}
}

// Upsert writes the movie keyed by external id as a single conflict-aware
// insert. Concurrent upserts for the same external id converge to one row; the
// losing insert turns into an update of the winner's row. The movie is then
// re-read so the caller sees the surviving record's ID and timestamps.
func (r *GORMMovieRepository) Upsert(movie *models.Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "year", "poster", "actors", "genre", "type", "duration", "updated_at",
		}),
	}).Create(movie).Error
	if err != nil {
		return fmt.Errorf("failed to upsert movie %s: %w", movie.ExternalID, err)
	}
	// Reload into a zero-valued destination: the caller's struct carries the
	// freshly generated primary key, which GORM would add to the query
	// conditions and miss the winner's row on the conflict path.
	var stored models.Movie
	if err := r.db.First(&stored, "external_id = ?", movie.ExternalID).Error; err != nil {
		return fmt.Errorf("failed to reload movie %s: %w", movie.ExternalID, err)
	}
	*movie = stored
	return nil
}

// GetByExternalID retrieves a cached movie by its external provider id.
func (r *GORMMovieRepository) GetByExternalID(externalID string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie by external ID %s: %w", externalID, err)
	}
	return &movie, nil
}
