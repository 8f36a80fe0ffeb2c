package graphql

import (
	"fmt"

	"flicks/internal/models"
	"flicks/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"
)

// AuthPayload is returned by signup and login: the account plus a fresh
// bearer token.
type AuthPayload struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Me returns the authenticated user's account.
func (r *Resolver) Me(p graphql.ResolveParams) (interface{}, error) {
	session, err := r.requireSession(p)
	if err != nil {
		return nil, err
	}
	user, err := r.auth.GetUser(session.UserID)
	if err != nil {
		return nil, toAPIError(err)
	}
	return user, nil
}

// Users lists every registered account.
func (r *Resolver) Users(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireSession(p); err != nil {
		return nil, err
	}
	users, err := r.auth.ListUsers()
	if err != nil {
		return nil, toAPIError(err)
	}
	return users, nil
}

// Signup creates an account and signs the new user in.
func (r *Resolver) Signup(p graphql.ResolveParams) (interface{}, error) {
	input, err := inputArg(p)
	if err != nil {
		return nil, err
	}
	in := services.SignupInput{
		FirstName: strField(input, "firstName"),
		LastName:  strField(input, "lastName"),
		Email:     strField(input, "email"),
		Password:  strField(input, "password"),
		City:      strField(input, "city"),
	}
	if err := r.validate.Struct(in); err != nil {
		return nil, validationError(describeValidationError(err))
	}

	user, token, err := r.auth.Signup(in)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &AuthPayload{User: user, Token: token}, nil
}

// Login authenticates by email and password.
func (r *Resolver) Login(p graphql.ResolveParams) (interface{}, error) {
	input, err := inputArg(p)
	if err != nil {
		return nil, err
	}
	email := strField(input, "email")
	password := strField(input, "password")
	if email == "" || password == "" {
		return nil, validationError("email and password are required")
	}

	user, token, err := r.auth.Login(email, password)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &AuthPayload{User: user, Token: token}, nil
}

// Logout is a stateless no-op: tokens are not persisted server-side, the
// client discards its copy.
func (r *Resolver) Logout(p graphql.ResolveParams) (interface{}, error) {
	return true, nil
}

// UpdateProfile applies a partial profile change to the authenticated user.
func (r *Resolver) UpdateProfile(p graphql.ResolveParams) (interface{}, error) {
	session, err := r.requireSession(p)
	if err != nil {
		return nil, err
	}
	input, err := inputArg(p)
	if err != nil {
		return nil, err
	}
	in := services.ProfileUpdateInput{
		FirstName: optStrField(input, "firstName"),
		LastName:  optStrField(input, "lastName"),
		Email:     optStrField(input, "email"),
		City:      optStrField(input, "city"),
	}
	user, err := r.auth.UpdateProfile(session.UserID, in)
	if err != nil {
		return nil, toAPIError(err)
	}
	return user, nil
}

// UpdatePassword replaces the authenticated user's password.
func (r *Resolver) UpdatePassword(p graphql.ResolveParams) (interface{}, error) {
	session, err := r.requireSession(p)
	if err != nil {
		return nil, err
	}
	input, err := inputArg(p)
	if err != nil {
		return nil, err
	}
	err = r.auth.UpdatePassword(
		session.UserID,
		strField(input, "currentPassword"),
		strField(input, "newPassword"),
		strField(input, "confirmPassword"),
	)
	if err != nil {
		return nil, toAPIError(err)
	}
	return true, nil
}

// describeValidationError turns the first struct-validation failure into a
// user-facing message.
func describeValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Sprintf("field '%s' failed on the '%s' rule", errs[0].Field(), errs[0].Tag())
	}
	return "invalid input"
}
