package services

import (
	"context"
	"errors"
	"strings"

	"flicks/internal/models"
	"flicks/internal/repositories"
	"flicks/pkg/omdb"
)

// MovieService is a read-through gateway to the external movie catalog. It
// normalizes provider payloads and maintains the local movie cache keyed by
// external id.
type MovieService struct {
	movieRepo repositories.MovieRepository
	catalog   *omdb.Client
}

// NewMovieService creates a new MovieService.
func NewMovieService(movieRepo repositories.MovieRepository, catalog *omdb.Client) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
		catalog:   catalog,
	}
}

// SearchResult is one page of catalog search results.
type SearchResult struct {
	Movies       []models.Movie `json:"movies"`
	TotalResults int            `json:"totalResults"`
}

// Search forwards the query to the catalog provider. A provider answer of
// "no results" is an empty page, not an error. Search results are not
// persisted.
func (s *MovieService) Search(ctx context.Context, query string, page int) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, NewError(KindValidation, "search query cannot be empty")
	}

	found, total, err := s.catalog.Search(ctx, query, page)
	if err != nil {
		return nil, WrapError(KindUpstream, "failed to search movies", err)
	}

	movies := make([]models.Movie, 0, len(found))
	for _, m := range found {
		movie := normalizeMovie(m)
		// Search results are not persisted, so the external id doubles as
		// the display id.
		movie.ID = movie.ExternalID
		movies = append(movies, movie)
	}
	return &SearchResult{Movies: movies, TotalResults: total}, nil
}

// Upsert fetches the movie's details by external id and idempotently writes
// them into the local cache. Repeated upserts for the same id converge to a
// single record carrying the provider's latest data.
func (s *MovieService) Upsert(ctx context.Context, externalID string) (*models.Movie, error) {
	detail, err := s.catalog.GetByID(ctx, externalID)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return nil, NewError(KindNotFound, "movie not found")
		}
		return nil, WrapError(KindUpstream, "failed to fetch movie details", err)
	}

	movie := normalizeMovie(*detail)
	if err := s.movieRepo.Upsert(&movie); err != nil {
		return nil, WrapError(KindInternal, "failed to save movie", err)
	}
	return &movie, nil
}

// normalizeMovie maps a provider payload onto the local schema. The provider
// uses the literal string "N/A" for absent posters.
func normalizeMovie(m omdb.Movie) models.Movie {
	poster := m.Poster
	if poster == "N/A" {
		poster = ""
	}
	return models.Movie{
		ExternalID: m.ImdbID,
		Title:      m.Title,
		Year:       m.Year,
		Poster:     poster,
		Actors:     m.Actors,
		Genre:      m.Genre,
		Type:       m.Type,
		Duration:   m.Runtime,
	}
}
