package model

import "errors"

var (
	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidToken covers every session token failure: bad signature,
	// malformed structure, expiry, unknown or deactivated account. Callers
	// must not be able to tell these apart.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrInvalidCredentials is returned on login for a wrong password,
	// an unknown email or an inactive account alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken maps the users.email unique constraint.
	ErrEmailTaken = errors.New("email already exists")
	// ErrSlugTaken maps the categories.slug unique constraint.
	ErrSlugTaken = errors.New("slug already exists")
	// ErrProductReferenced means a product cannot be removed because
	// sales rows still reference it.
	ErrProductReferenced = errors.New("product has recorded sales")
)
