package repositories

import (
	"sort"
	"sync"
	"time"

	"flicks/internal/models"

	"github.com/google/uuid"
)

// MockFavoriteRepository is an in-memory implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	favorites map[string]models.Favorite // keyed by userID + "/" + movieID
	mu        sync.Mutex
}

// NewMockFavoriteRepository creates a new instance of MockFavoriteRepository.
func NewMockFavoriteRepository() *MockFavoriteRepository {
	return &MockFavoriteRepository{
		favorites: make(map[string]models.Favorite),
	}
}

// Create inserts the favorite unless the (user, movie) pair already exists.
// The map write happens under one lock, mirroring the atomic conditional
// insert of the GORM implementation.
func (r *MockFavoriteRepository) Create(favorite *models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favorite.UserID + "/" + favorite.MovieID
	if _, ok := r.favorites[key]; ok {
		return ErrDuplicate
	}
	if favorite.ID == "" {
		favorite.ID = uuid.New().String()
	}
	favorite.CreatedAt = time.Now()
	favorite.UpdatedAt = favorite.CreatedAt
	r.favorites[key] = *favorite
	return nil
}

// DeleteByUserAndExternalID removes a favorite; missing rows are a no-op.
func (r *MockFavoriteRepository) DeleteByUserAndExternalID(userID, externalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, fav := range r.favorites {
		if fav.UserID == userID && fav.ExternalID == externalID {
			delete(r.favorites, key)
		}
	}
	return nil
}

// ListByUser returns the user's favorites, most recently created first.
func (r *MockFavoriteRepository) ListByUser(userID string) ([]models.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites := make([]models.Favorite, 0)
	for _, fav := range r.favorites {
		if fav.UserID == userID {
			favorites = append(favorites, fav)
		}
	}
	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt.After(favorites[j].CreatedAt)
	})
	return favorites, nil
}
