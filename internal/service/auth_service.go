package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"team-service/internal/domain"
	"team-service/internal/jwt"
	"team-service/internal/my_errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  UserRepository
	jwtSecret string
}

func NewAuthService(userRepo UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := jwt.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, my_errors.ErrUserNotFound) {
			return "", nil, fmt.Errorf("%w", my_errors.ErrInvalidCredentials)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w", my_errors.ErrInvalidCredentials)
	}

	token, err := jwt.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// ValidateToken resolves a bearer token to a user id for the auth
// middleware. The user must still exist: tokens outlive accounts.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := jwt.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	if _, err := s.userRepo.GetUserByID(ctx, claims.UserID); err != nil {
		return "", fmt.Errorf("%w", my_errors.ErrUserNotFound)
	}

	return claims.UserID, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID, name string, profileImage *string) (*domain.User, error) {
	if name == "" {
		return nil, fmt.Errorf("name: %w", my_errors.ErrEmptyField)
	}
	return s.userRepo.UpdateProfile(ctx, userID, name, profileImage)
}
