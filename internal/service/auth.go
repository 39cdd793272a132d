package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// Auth implements login and session resolution. A session token proves
// identity cryptographically, but authorization state (role, active flag)
// is re-read from the user store on every resolution so that deactivations
// and demotions take effect on the very next request.
type Auth struct {
	users  model.UserStore
	tokens model.TokenManager
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewAuth(users model.UserStore, tokens model.TokenManager, hasher model.PasswordHasher, logger *logger.Logger) *Auth {
	return &Auth{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

// Login verifies credentials and issues a session token. Unknown email,
// wrong password and inactive account all yield ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, password string) (model.AuthUser, string, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.AuthUser{}, "", model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthUser{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.IsActive || !a.hasher.Compare(user.PasswordHash, password) {
		return model.AuthUser{}, "", model.ErrInvalidCredentials
	}

	authUser := model.AuthUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}

	tokenString, err := a.tokens.Issue(authUser)
	if err != nil {
		a.logger.Error("Auth service: failed to issue session token",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthUser{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID,
		"role", user.Role)

	return authUser, tokenString, nil
}

// Resolve maps a raw session token to a live, active user. The returned
// identity comes from the current database row, not from the token claims:
// the claims only tell us which row to read. A token for a user who has
// since been deactivated or removed resolves to ErrInvalidToken even though
// it is still cryptographically valid.
func (a *Auth) Resolve(ctx context.Context, tokenString string) (model.AuthUser, error) {
	claims, err := a.tokens.Parse(tokenString)
	if err != nil {
		return model.AuthUser{}, model.ErrInvalidToken
	}

	user, err := a.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.AuthUser{}, model.ErrInvalidToken
		}
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", claims.UserID,
			"error", err.Error())
		return model.AuthUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !user.IsActive {
		return model.AuthUser{}, model.ErrInvalidToken
	}

	return model.AuthUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}
