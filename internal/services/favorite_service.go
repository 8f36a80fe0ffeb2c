package services

import (
	"context"
	"errors"

	"flicks/internal/models"
	"flicks/internal/repositories"
)

// FavoriteService maintains the many-to-many relation between users and
// saved movies with an at-most-once guarantee per (user, movie) pair.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	movies       *MovieService
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, movies *MovieService) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		movies:       movies,
	}
}

// Add saves the movie to the user's favorites. The movie record is
// materialized (or refreshed) first; the favorite insert itself is a single
// conditional write, so adding the same movie twice reports a Conflict
// instead of duplicating the row or silently succeeding.
func (s *FavoriteService) Add(ctx context.Context, userID, externalID string) (*models.Favorite, error) {
	movie, err := s.movies.Upsert(ctx, externalID)
	if err != nil {
		return nil, err
	}

	favorite := &models.Favorite{
		UserID:     userID,
		MovieID:    movie.ID,
		ExternalID: movie.ExternalID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, NewError(KindConflict, "movie already in favorites")
		}
		return nil, WrapError(KindInternal, "failed to add favorite movie", err)
	}
	favorite.Movie = *movie
	return favorite, nil
}

// Remove deletes the user's favorite for the given external movie id.
// Removing a favorite that does not exist is a no-op success.
func (s *FavoriteService) Remove(ctx context.Context, userID, externalID string) error {
	if err := s.favoriteRepo.DeleteByUserAndExternalID(userID, externalID); err != nil {
		return WrapError(KindInternal, "failed to remove favorite movie", err)
	}
	return nil
}

// List returns the user's favorites, newest first, each populated with its
// movie record.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	favorites, err := s.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, WrapError(KindInternal, "failed to fetch favorite movies", err)
	}
	return favorites, nil
}
