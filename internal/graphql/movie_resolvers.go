package graphql

import "github.com/graphql-go/graphql"

// SearchMovies forwards a title search to the external catalog.
func (r *Resolver) SearchMovies(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireSession(p); err != nil {
		return nil, err
	}

	query, _ := p.Args["query"].(string)
	page, ok := p.Args["page"].(int)
	if !ok {
		page = 1
	}

	result, err := r.movies.Search(p.Context, query, page)
	if err != nil {
		return nil, toAPIError(err)
	}
	return result, nil
}
