package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rakafirdaus/go-blog-api/internal/domain/entity"
	repo "github.com/rakafirdaus/go-blog-api/internal/domain/repository"
	"github.com/rakafirdaus/go-blog-api/pkg/helpers"
)

// AuthService orchestrates registration and login over the credential store,
// the password hasher, and the token issuer.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(userRepo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: userRepo, JWT: jwt, Logger: logger}
}

// AuthResult carries a freshly issued token and the redacted user view.
type AuthResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      entity.PublicUser `json:"user"`
}

// Register creates a new user and issues a token bound to it. The email must
// be unique; the uniqueness check runs up front for a friendly error and the
// database constraint backstops the race between two identical registrations.
func (s *AuthService) Register(ctx context.Context, email, password, profileImage string) (*AuthResult, error) {
	if email == "" || password == "" || profileImage == "" {
		return nil, ErrValidation
	}

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hashing failed")
		}
		return nil, err
	}

	u := &entity.User{Email: email, Password: hash, ProfileImage: profileImage}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return s.issue(u)
}

// Login verifies the credentials and issues a token identical in shape to
// registration's. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: u.Public()}, nil
}
