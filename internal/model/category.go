package model

import (
	"context"
	"time"
)

// CategoryStore defines persistence operations for categories.
type CategoryStore interface {
	ListActive(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	// Deactivate soft-deletes a category. Rows are never removed so that
	// product category text keeps pointing at something that existed.
	Deactivate(ctx context.Context, id int64) (Category, error)
}

// Category is a storefront grouping with a unique slug.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"isActive"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}
