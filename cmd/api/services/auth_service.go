package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ramo772/blog-management-api/cmd/api/auth"
	"github.com/ramo772/blog-management-api/cmd/api/dto"
	"github.com/ramo772/blog-management-api/models"
)

// AuthService handles registration and login, and issues access tokens.
type AuthService struct {
	users      UserStore
	jwtManager *auth.JWTManager
}

func NewAuthService(users UserStore, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new account with a bcrypt-hashed password and returns
// the sanitized identity plus a fresh token. A taken email fails with
// ErrEmailTaken whether it is seen on the pre-check or on the unique index.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (dto.UserDTO, string, error) {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return dto.UserDTO{}, "", fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return dto.UserDTO{}, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserDTO{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
	}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dto.UserDTO{}, "", ErrEmailTaken
		}
		return dto.UserDTO{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtManager.Sign(id.Hex(), user.IsAdmin)
	if err != nil {
		return dto.UserDTO{}, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return dto.UserDTO{ID: id.Hex(), Name: user.Name, Email: user.Email}, token, nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login verifies the credentials and returns the sanitized identity plus a
// fresh token. Unknown email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (dto.UserDTO, string, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return dto.UserDTO{}, "", fmt.Errorf("failed to look up email: %w", err)
	}
	if user == nil {
		return dto.UserDTO{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return dto.UserDTO{}, "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.Sign(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return dto.UserDTO{}, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return dto.UserDTO{ID: user.ID.Hex(), Name: user.Name, Email: user.Email}, token, nil
}

// ParseAccessToken verifies a token and returns the caller's id and admin flag.
func (s *AuthService) ParseAccessToken(token string) (string, bool, error) {
	return s.jwtManager.Parse(token)
}
