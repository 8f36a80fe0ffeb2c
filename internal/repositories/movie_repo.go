package repositories

import "flicks/internal/models"

// MovieRepository defines the interface for the local movie cache.
type MovieRepository interface {
	// Upsert inserts the movie or refreshes the existing record with the same
	// external id, atomically, and fills in the surviving record's fields.
	Upsert(movie *models.Movie) error
	GetByExternalID(externalID string) (*models.Movie, error)
}
