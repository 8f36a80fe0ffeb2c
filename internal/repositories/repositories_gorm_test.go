package repositories_test

import (
	"fmt"
	"testing"

	"flicks/internal/models"
	"flicks/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a fresh in-memory SQLite database per test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Movie{}, &models.Favorite{}))
	return db
}

func TestGORMUserRepository_DuplicateEmail(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))

	first := &models.User{FirstName: "Ada", Email: "ada@example.com", Password: "hash"}
	assert.NoError(t, repo.Create(first))

	// The unique index rejects the second insert with the same email.
	second := &models.User{FirstName: "Imposter", Email: "ada@example.com", Password: "hash"}
	err := repo.Create(second)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	// The first account is unaffected.
	stored, err := repo.GetByEmail("ada@example.com")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
}

func TestGORMMovieRepository_UpsertConverges(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMMovieRepository(db)

	movie := &models.Movie{ExternalID: "tt1375666", Title: "Inception", Year: "2010"}
	assert.NoError(t, repo.Upsert(movie))
	firstID := movie.ID

	// A later upsert with refreshed provider data lands on the same row.
	refreshed := &models.Movie{ExternalID: "tt1375666", Title: "Inception", Year: "2010", Actors: "Leonardo DiCaprio"}
	assert.NoError(t, repo.Upsert(refreshed))
	assert.Equal(t, firstID, refreshed.ID)

	stored, err := repo.GetByExternalID("tt1375666")
	assert.NoError(t, err)
	assert.Equal(t, firstID, stored.ID)
	assert.Equal(t, "Leonardo DiCaprio", stored.Actors)

	var count int64
	assert.NoError(t, db.Model(&models.Movie{}).Where("external_id = ?", "tt1375666").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGORMFavoriteRepository_DuplicatePair(t *testing.T) {
	db := openTestDB(t)
	movieRepo := repositories.NewGORMMovieRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)

	movie := &models.Movie{ExternalID: "tt1375666", Title: "Inception"}
	assert.NoError(t, movieRepo.Upsert(movie))

	first := &models.Favorite{UserID: "user-1", MovieID: movie.ID, ExternalID: movie.ExternalID}
	assert.NoError(t, favoriteRepo.Create(first))

	// The conditional insert reports the existing pair instead of adding a
	// second row.
	second := &models.Favorite{UserID: "user-1", MovieID: movie.ID, ExternalID: movie.ExternalID}
	assert.ErrorIs(t, favoriteRepo.Create(second), repositories.ErrDuplicate)

	favorites, err := favoriteRepo.ListByUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
	assert.Equal(t, "Inception", favorites[0].Movie.Title)

	// A different user may favorite the same movie.
	other := &models.Favorite{UserID: "user-2", MovieID: movie.ID, ExternalID: movie.ExternalID}
	assert.NoError(t, favoriteRepo.Create(other))
}

func TestGORMFavoriteRepository_DeleteIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	movieRepo := repositories.NewGORMMovieRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)

	movie := &models.Movie{ExternalID: "tt1375666", Title: "Inception"}
	assert.NoError(t, movieRepo.Upsert(movie))

	assert.NoError(t, favoriteRepo.DeleteByUserAndExternalID("user-1", "tt1375666"))

	favorite := &models.Favorite{UserID: "user-1", MovieID: movie.ID, ExternalID: movie.ExternalID}
	assert.NoError(t, favoriteRepo.Create(favorite))
	assert.NoError(t, favoriteRepo.DeleteByUserAndExternalID("user-1", "tt1375666"))

	favorites, err := favoriteRepo.ListByUser("user-1")
	assert.NoError(t, err)
	assert.Empty(t, favorites)

	// Removing after removal still succeeds, and the pair can be re-added.
	assert.NoError(t, favoriteRepo.DeleteByUserAndExternalID("user-1", "tt1375666"))
	assert.NoError(t, favoriteRepo.Create(&models.Favorite{UserID: "user-1", MovieID: movie.ID, ExternalID: movie.ExternalID}))
}
