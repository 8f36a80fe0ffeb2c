package graphql

import (
	"flicks/internal/models"

	"github.com/graphql-go/graphql"
)

// GetFavoriteMovies returns the authenticated user's favorites, newest
// first.
func (r *Resolver) GetFavoriteMovies(p graphql.ResolveParams) (interface{}, error) {
	session, err := r.requireSession(p)
	if err != nil {
		return nil, err
	}

	favorites, err := r.favorites.List(p.Context, session.UserID)
	if err != nil {
		return nil, toAPIError(err)
	}
	out := make([]*models.Favorite, 0, len(favorites))
	for i := range favorites {
		out = append(out, &favorites[i])
	}
	return out, nil
}

// AddFavoriteMovie saves a movie to the authenticated user's favorites.
func (r *Resolver) AddFavoriteMovie(p graphql.ResolveParams) (interface{}, error) {
	session, err := r.requireSession(p)
	if err != nil {
		return nil, err
	}
	externalID, _ := p.Args["externalId"].(string)
	if externalID == "" {
		return nil, validationError("externalId is required")
	}

	favorite, err := r.favorites.Add(p.Context, session.UserID, externalID)
	if err != nil {
		return nil, toAPIError(err)
	}
	return favorite, nil
}

// RemoveFavoriteMovie removes a favorite; removing an absent one succeeds.
func (r *Resolver) RemoveFavoriteMovie(p graphql.ResolveParams) (interface{}, error) {
	session, err := r.requireSession(p)
	if err != nil {
		return nil, err
	}
	externalID, _ := p.Args["externalId"].(string)
	if externalID == "" {
		return nil, validationError("externalId is required")
	}

	if err := r.favorites.Remove(p.Context, session.UserID, externalID); err != nil {
		return nil, toAPIError(err)
	}
	return true, nil
}
