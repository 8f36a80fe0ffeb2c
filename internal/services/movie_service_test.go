package services_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"flicks/internal/models"
	"flicks/internal/repositories"
	"flicks/internal/services"
	"flicks/pkg/omdb"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newCatalogServer fakes the external movie provider. It knows one searchable
// title and one movie id; everything else gets the provider's "no results"
// answer.
func newCatalogServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		q := r.URL.Query()
		switch {
		case q.Get("s") == "inception":
			fmt.Fprint(w, `{
				"Response": "True",
				"Search": [
					{"imdbID": "tt1375666", "Title": "Inception", "Year": "2010", "Poster": "https://img.example/inception.jpg", "Type": "movie"},
					{"imdbID": "tt5295894", "Title": "Inception: The Cobol Job", "Year": "2010", "Poster": "N/A", "Type": "movie"}
				],
				"totalResults": "2"
			}`)
		case q.Get("s") != "":
			fmt.Fprint(w, `{"Response": "False", "Error": "Movie not found!"}`)
		case q.Get("i") == "tt1375666":
			fmt.Fprint(w, `{
				"Response": "True",
				"imdbID": "tt1375666",
				"Title": "Inception",
				"Year": "2010",
				"Poster": "https://img.example/inception.jpg",
				"Actors": "Leonardo DiCaprio, Joseph Gordon-Levitt",
				"Genre": "Action, Adventure, Sci-Fi",
				"Type": "movie",
				"Runtime": "148 min"
			}`)
		default:
			fmt.Fprint(w, `{"Response": "False", "Error": "Incorrect IMDb ID."}`)
		}
	}))
}

func newMovieService(baseURL string, repo repositories.MovieRepository) *services.MovieService {
	client := omdb.NewClient(omdb.Config{APIKey: "test_api_key", BaseURL: baseURL})
	return services.NewMovieService(repo, client)
}

func TestMovieService_Search(t *testing.T) {
	server := newCatalogServer()
	defer server.Close()
	movieService := newMovieService(server.URL, repositories.NewMockMovieRepository())

	result, err := movieService.Search(context.Background(), "inception", 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalResults)
	assert.Len(t, result.Movies, 2)

	first := result.Movies[0]
	assert.Equal(t, "tt1375666", first.ExternalID)
	assert.Equal(t, "tt1375666", first.ID)
	assert.Equal(t, "Inception", first.Title)
	assert.Equal(t, "https://img.example/inception.jpg", first.Poster)

	// "N/A" posters are normalized away.
	assert.Equal(t, "", result.Movies[1].Poster)
}

func TestMovieService_SearchNoResults(t *testing.T) {
	server := newCatalogServer()
	defer server.Close()
	movieService := newMovieService(server.URL, repositories.NewMockMovieRepository())

	// The provider reporting zero matches is an empty page, not an error.
	result, err := movieService.Search(context.Background(), "nosuchmovie", 1)
	assert.NoError(t, err)
	assert.Empty(t, result.Movies)
	assert.Equal(t, 0, result.TotalResults)
}

func TestMovieService_SearchEmptyQuery(t *testing.T) {
	server := newCatalogServer()
	defer server.Close()
	movieService := newMovieService(server.URL, repositories.NewMockMovieRepository())

	_, err := movieService.Search(context.Background(), "   ", 1)
	assert.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestMovieService_SearchUnparsableTotal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"Response": "True",
			"Search": [{"imdbID": "tt1375666", "Title": "Inception", "Year": "2010", "Type": "movie"}],
			"totalResults": "not-a-number"
		}`)
	}))
	defer server.Close()
	movieService := newMovieService(server.URL, repositories.NewMockMovieRepository())

	// A garbled provider count falls back to the page size instead of failing
	// the whole search.
	result, err := movieService.Search(context.Background(), "inception", 1)
	assert.NoError(t, err)
	assert.Len(t, result.Movies, 1)
	assert.Equal(t, 1, result.TotalResults)
}

func TestMovieService_SearchUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	movieService := newMovieService(server.URL, repositories.NewMockMovieRepository())

	_, err := movieService.Search(context.Background(), "inception", 1)
	assert.Error(t, err)
	assert.Equal(t, services.KindUpstream, services.KindOf(err))
}

func TestMovieService_Upsert(t *testing.T) {
	server := newCatalogServer()
	defer server.Close()
	movieRepo := repositories.NewMockMovieRepository()
	movieService := newMovieService(server.URL, movieRepo)

	movie, err := movieService.Upsert(context.Background(), "tt1375666")
	assert.NoError(t, err)
	assert.NotEmpty(t, movie.ID)
	assert.Equal(t, "tt1375666", movie.ExternalID)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, "148 min", movie.Duration)

	// Repeated upserts converge to the same record.
	again, err := movieService.Upsert(context.Background(), "tt1375666")
	assert.NoError(t, err)
	assert.Equal(t, movie.ID, again.ID)

	stored, err := movieRepo.GetByExternalID("tt1375666")
	assert.NoError(t, err)
	assert.Equal(t, movie.ID, stored.ID)
}

// TestMovieService_UpsertConvergesAcrossRepositories runs the same converge
// flow against both MovieRepository implementations so the in-memory mock and
// the real storage path cannot drift apart.
func TestMovieService_UpsertConvergesAcrossRepositories(t *testing.T) {
	server := newCatalogServer()
	defer server.Close()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Movie{}))

	repos := map[string]repositories.MovieRepository{
		"mock": repositories.NewMockMovieRepository(),
		"gorm": repositories.NewGORMMovieRepository(db),
	}
	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			movieService := newMovieService(server.URL, repo)

			movie, err := movieService.Upsert(context.Background(), "tt1375666")
			assert.NoError(t, err)
			assert.NotEmpty(t, movie.ID)

			// The second upsert lands on the first record.
			again, err := movieService.Upsert(context.Background(), "tt1375666")
			assert.NoError(t, err)
			assert.Equal(t, movie.ID, again.ID)

			stored, err := repo.GetByExternalID("tt1375666")
			assert.NoError(t, err)
			assert.Equal(t, movie.ID, stored.ID)
		})
	}
}

func TestMovieService_UpsertUnknownID(t *testing.T) {
	server := newCatalogServer()
	defer server.Close()
	movieService := newMovieService(server.URL, repositories.NewMockMovieRepository())

	_, err := movieService.Upsert(context.Background(), "tt0000000")
	assert.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}
