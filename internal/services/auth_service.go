package services

import (
	"errors"
	"log"
	"time"
	"unicode"

	"flicks/internal/models"
	"flicks/internal/repositories"
	"flicks/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentials is the single message for every login failure so that
// responses do not reveal whether an email is registered.
const invalidCredentials = "invalid credentials"

// EmailPublisher enqueues outbound mail events. The RabbitMQ client
// implements it; tests substitute a mock or pass nil to disable mail.
type EmailPublisher interface {
	PublishWelcomeEmail(email rabbitmq.WelcomeEmail) error
}

// AuthConfig holds the explicit settings for an AuthService. Values come from
// the composition root; the service never reads ambient configuration.
type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration // defaults to 1 hour
	PasswordMinLength int           // defaults to 8
}

// AuthService owns user credentials: signup, login, profile and password
// changes, and the issuing/verification of bearer tokens.
type AuthService struct {
	userRepo    repositories.UserRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
	minPassword int
	mailer      EmailPublisher
}

// NewAuthService creates a new AuthService. mailer may be nil, in which case
// no welcome emails are enqueued.
func NewAuthService(userRepo repositories.UserRepository, cfg AuthConfig, mailer EmailPublisher) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	minLen := cfg.PasswordMinLength
	if minLen <= 0 {
		minLen = 8
	}
	return &AuthService{
		userRepo:    userRepo,
		jwtSecret:   []byte(cfg.JWTSecret),
		tokenTTL:    ttl,
		minPassword: minLen,
		mailer:      mailer,
	}
}

// SignupInput carries the fields required to create an account.
type SignupInput struct {
	FirstName string `validate:"required,min=1,max=100"`
	LastName  string `validate:"omitempty,max=100"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	City      string `validate:"omitempty,max=100"`
}

// Signup registers a new account and returns the stored user plus a fresh
// token. A registered email produces a Conflict error; the unique index on
// email closes the race between the pre-check and the insert.
func (s *AuthService) Signup(input SignupInput) (*models.User, string, error) {
	if _, err := s.userRepo.GetByEmail(input.Email); err == nil {
		return nil, "", NewError(KindConflict, "email already registered")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, "", WrapError(KindInternal, "could not create account", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", WrapError(KindInternal, "could not create account", err)
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hash),
		City:      input.City,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, "", NewError(KindConflict, "email already registered")
		}
		return nil, "", WrapError(KindInternal, "could not create account", err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", WrapError(KindInternal, "could not create account", err)
	}

	if s.mailer != nil {
		mail := rabbitmq.WelcomeEmail{Email: user.Email, FirstName: user.FirstName}
		if err := s.mailer.PublishWelcomeEmail(mail); err != nil {
			// Mail is best effort; the account is already created.
			log.Printf("Warning: failed to enqueue welcome email for %s: %v", user.Email, err)
		}
	}

	return user, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both return the identical Unauthenticated error.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", NewError(KindUnauthenticated, invalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", NewError(KindUnauthenticated, invalidCredentials)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", WrapError(KindInternal, "could not log in", err)
	}
	return user, token, nil
}

// GetUser loads a single user by id.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NewError(KindNotFound, "user not found")
		}
		return nil, WrapError(KindInternal, "could not load user", err)
	}
	return user, nil
}

// ListUsers returns every registered user.
func (s *AuthService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, WrapError(KindInternal, "could not list users", err)
	}
	return users, nil
}

// ProfileUpdateInput carries a partial profile change; nil fields are left
// untouched.
type ProfileUpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	City      *string
}

// UpdateProfile applies a partial update to the user's profile. Changing the
// email re-checks uniqueness against every other account.
func (s *AuthService) UpdateProfile(userID string, input ProfileUpdateInput) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(*input.Email)
		if err == nil && existing.ID != userID {
			return nil, NewError(KindConflict, "email already in use")
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, WrapError(KindInternal, "could not update profile", err)
		}
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.City != nil {
		user.City = *input.City
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, NewError(KindConflict, "email already in use")
		}
		return nil, WrapError(KindInternal, "could not update profile", err)
	}
	return user, nil
}

// UpdatePassword replaces the stored hash after checking the current
// password, the confirmation and the strength policy.
func (s *AuthService) UpdatePassword(userID, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return NewError(KindValidation, "password confirmation does not match")
	}
	if err := s.checkPasswordStrength(newPassword); err != nil {
		return err
	}

	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return NewError(KindValidation, "current password is incorrect")
	}
	if newPassword == current {
		return NewError(KindValidation, "new password must differ from the current one")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return WrapError(KindInternal, "could not update password", err)
	}
	user.Password = string(hash)
	if err := s.userRepo.Update(user); err != nil {
		return WrapError(KindInternal, "could not update password", err)
	}
	return nil
}

// checkPasswordStrength enforces the minimum length and requires all four
// character classes: upper, lower, digit and special.
func (s *AuthService) checkPasswordStrength(password string) error {
	if len(password) < s.minPassword {
		return NewError(KindValidation, "password is too short")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return NewError(KindValidation, "password must contain upper and lower case letters, a digit and a special character")
	}
	return nil
}

// IssueToken produces a signed token embedding the user id with an expiry
// offset from now.
func (s *AuthService) IssueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", WrapError(KindInternal, "could not issue token", err)
	}
	return tokenString, nil
}

// VerifyToken returns the embedded user id when the token is authentic and
// unexpired. Malformed, tampered and expired tokens all collapse to a single
// "not ok" result so callers cannot distinguish the failure cause.
func (s *AuthService) VerifyToken(tokenString string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// Authenticate resolves a bearer token to a session. Any verification
// failure, including a user that no longer exists, yields nil: an anonymous
// session, never an error.
func (s *AuthService) Authenticate(tokenString string) *Session {
	userID, ok := s.VerifyToken(tokenString)
	if !ok {
		return nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil
	}
	return &Session{
		UserID: user.ID,
		Email:  user.Email,
		City:   user.City,
	}
}
