package repository

import (
	"context"
	"errors"
	"fmt"

	"team-service/internal/domain"
	"team-service/internal/my_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (id, name, email, password_hash, profile_image, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $6)
    `
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.ProfileImage, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w", my_errors.ErrEmailTaken)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT id, name, email, password_hash, profile_image, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, name, email, password_hash, profile_image, created_at, updated_at
        FROM users
        WHERE lower(email) = lower($1)
    `
	var user domain.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID, name string, profileImage *string) (*domain.User, error) {
	query := `
        UPDATE users
        SET name = $1, profile_image = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING id, name, email, password_hash, profile_image, created_at, updated_at
    `
	var user domain.User
	err := r.pool.QueryRow(ctx, query, name, profileImage, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}
