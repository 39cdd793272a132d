package service

import (
	"context"
	"fmt"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// UserInput carries fields for creating an account.
type UserInput struct {
	Email    string
	Name     *string
	Password string
	Role     model.Role
}

// UserUpdate carries fields for an admin edit. Password is re-hashed only
// when provided.
type UserUpdate struct {
	Email    string
	Name     *string
	Role     model.Role
	IsActive bool
	Password *string
}

// User implements account administration.
type User struct {
	users  model.UserStore
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewUser(users model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *User) Create(ctx context.Context, input UserInput) (model.User, error) {
	role := input.Role
	if role == "" {
		role = model.RoleUser
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, model.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", user.ID,
		"role", user.Role)

	return user, nil
}

func (s *User) Update(ctx context.Context, id int64, update UserUpdate) (model.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	existing.Email = update.Email
	existing.Name = update.Name
	existing.Role = update.Role
	existing.IsActive = update.IsActive
	if update.Password != nil && *update.Password != "" {
		passwordHash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = passwordHash
	}

	user, err := s.users.Update(ctx, existing)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *User) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", id)

	return nil
}
