package repositories

import (
	"sync"
	"time"

	"flicks/internal/models"

	"github.com/google/uuid"
)

// MockMovieRepository is an in-memory implementation of MovieRepository.
type MockMovieRepository struct {
	movies map[string]models.Movie // keyed by external id
	mu     sync.RWMutex
}

// NewMockMovieRepository creates a new instance of MockMovieRepository.
func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{
		movies: make(map[string]models.Movie),
	}
}

// Upsert inserts or refreshes the movie keyed by external id.
func (r *MockMovieRepository) Upsert(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	existing, ok := r.movies[movie.ExternalID]
	if ok {
		// The first inserted record survives; only provider fields refresh.
		movie.ID = existing.ID
		movie.CreatedAt = existing.CreatedAt
	} else {
		if movie.ID == "" {
			movie.ID = uuid.New().String()
		}
		movie.CreatedAt = now
	}
	movie.UpdatedAt = now
	r.movies[movie.ExternalID] = *movie
	return nil
}

// GetByExternalID returns a movie by its external id.
func (r *MockMovieRepository) GetByExternalID(externalID string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[externalID]
	if !ok {
		return nil, ErrNotFound
	}
	return &movie, nil
}
