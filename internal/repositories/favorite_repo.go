package repositories

import "flicks/internal/models"

// FavoriteRepository defines the interface for the user/movie favorites join.
type FavoriteRepository interface {
	// Create inserts the favorite if the (user, movie) pair is absent and
	// returns ErrDuplicate if it already exists. The check and the insert are
	// a single atomic storage operation.
	Create(favorite *models.Favorite) error
	// DeleteByUserAndExternalID removes the matching favorite. Deleting a
	// favorite that does not exist is not an error.
	DeleteByUserAndExternalID(userID, externalID string) error
	// ListByUser returns the user's favorites, newest first, with the movie
	// record populated.
	ListByUser(userID string) ([]models.Favorite, error)
}
