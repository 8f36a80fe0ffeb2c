package graphql

import "github.com/graphql-go/graphql"

// NewSchema assembles the executable schema over the resolver. The type
// shapes mirror the public API: User, Movie, FavoriteMovie, Weather plus the
// auth payload and the mutation inputs.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"lastName":  &graphql.Field{Type: graphql.String},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"city":      &graphql.Field{Type: graphql.String},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	movieType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"year":       &graphql.Field{Type: graphql.String},
			"actors":     &graphql.Field{Type: graphql.String},
			"poster":     &graphql.Field{Type: graphql.String},
			"genre":      &graphql.Field{Type: graphql.String},
			"type":       &graphql.Field{Type: graphql.String},
			"duration":   &graphql.Field{Type: graphql.String},
			"externalId": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	movieSearchResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "MovieSearchResult",
		Fields: graphql.Fields{
			"movies":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(movieType)))},
			"totalResults": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	favoriteMovieType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FavoriteMovie",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"movie":     &graphql.Field{Type: graphql.NewNonNull(movieType)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	weatherType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Weather",
		Fields: graphql.Fields{
			"cityName":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"temperature": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"icon":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"timestamp":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	signupInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SignupInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"city":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	loginInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LogInInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateProfileInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateProfileInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"firstName": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"city":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updatePasswordInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdatePasswordInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"currentPassword": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"newPassword":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"confirmPassword": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.Me,
			},
			"users": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: r.Users,
			},
			"searchMovies": &graphql.Field{
				Type: graphql.NewNonNull(movieSearchResultType),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"page":  &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.SearchMovies,
			},
			"getFavoriteMovies": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(favoriteMovieType))),
				Resolve: r.GetFavoriteMovies,
			},
			"getCurrentWeather": &graphql.Field{
				Type: graphql.NewNonNull(weatherType),
				Args: graphql.FieldConfigArgument{
					"city": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.GetCurrentWeather,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupInput)},
				},
				Resolve: r.Signup,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
				},
				Resolve: r.Login,
			},
			"logout": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Resolve: r.Logout,
			},
			"updateProfile": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateProfileInput)},
				},
				Resolve: r.UpdateProfile,
			},
			"updatePassword": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updatePasswordInput)},
				},
				Resolve: r.UpdatePassword,
			},
			"addFavoriteMovie": &graphql.Field{
				Type: graphql.NewNonNull(favoriteMovieType),
				Args: graphql.FieldConfigArgument{
					"externalId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.AddFavoriteMovie,
			},
			"removeFavoriteMovie": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"externalId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.RemoveFavoriteMovie,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
