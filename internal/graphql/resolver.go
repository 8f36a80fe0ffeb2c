package graphql

import (
	"flicks/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"
)

// Resolver binds the GraphQL fields to the service layer. It is the only
// producer of protocol errors: service error kinds are translated here and
// nowhere else.
type Resolver struct {
	auth      *services.AuthService
	movies    *services.MovieService
	favorites *services.FavoriteService
	weather   *services.WeatherService
	validate  *validator.Validate
}

// NewResolver creates a new Resolver over the given services.
func NewResolver(auth *services.AuthService, movies *services.MovieService, favorites *services.FavoriteService, weather *services.WeatherService) *Resolver {
	return &Resolver{
		auth:      auth,
		movies:    movies,
		favorites: favorites,
		weather:   weather,
		validate:  validator.New(),
	}
}

// requireSession returns the request's session or the uniform
// unauthenticated error.
func (r *Resolver) requireSession(p graphql.ResolveParams) (*services.Session, error) {
	session, ok := services.SessionFromContext(p.Context)
	if !ok {
		return nil, authError()
	}
	return session, nil
}

// inputArg extracts the "input" argument as a map.
func inputArg(p graphql.ResolveParams) (map[string]interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, validationError("input is required")
	}
	return input, nil
}

// strField reads a string field from a decoded input map, empty when absent.
func strField(input map[string]interface{}, key string) string {
	value, _ := input[key].(string)
	return value
}

// optStrField reads an optional string field, nil when the client omitted it.
func optStrField(input map[string]interface{}, key string) *string {
	value, ok := input[key].(string)
	if !ok {
		return nil
	}
	return &value
}
