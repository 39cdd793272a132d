package model

import (
	"context"
	"time"
)

// Role is a closed set of account roles. Only RoleAdmin grants access to
// the back office; RoleUser exists so intermediate roles can be added
// without changing the authorization contract.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id int64) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}

// User represents a stored account with authentication material.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Name         *string    `json:"name"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// AuthUser is the session projection of a user. It is always sourced from
// the current database row, never from token claims.
type AuthUser struct {
	ID    int64   `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Role  Role    `json:"role"`
}

// SessionClaims are the identity claims embedded in a session token.
type SessionClaims struct {
	UserID int64
	Email  string
	Role   Role
}

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Issue(user AuthUser) (string, error)
	Parse(token string) (SessionClaims, error)
}
