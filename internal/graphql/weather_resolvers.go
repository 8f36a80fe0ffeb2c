package graphql

import "github.com/graphql-go/graphql"

// GetCurrentWeather returns the normalized current weather for the given
// city, falling back to the authenticated user's profile city when no
// argument is provided.
func (r *Resolver) GetCurrentWeather(p graphql.ResolveParams) (interface{}, error) {
	session, err := r.requireSession(p)
	if err != nil {
		return nil, err
	}

	city, _ := p.Args["city"].(string)
	if city == "" {
		city = session.City
	}

	weather, err := r.weather.Current(p.Context, city)
	if err != nil {
		return nil, toAPIError(err)
	}
	return weather, nil
}
