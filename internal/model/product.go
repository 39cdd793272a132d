package model

import (
	"context"
	"time"
)

// ProductStore defines persistence operations for catalog products.
type ProductStore interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, product Product) (Product, error)
	Delete(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, imageURL string) error
	Count(ctx context.Context) (int64, error)
}

// Product is a catalog item. Category is free text, not a foreign key:
// categories are advisory groupings for the storefront filter.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	ImageURL    *string   `json:"imageUrl"`
	Category    string    `json:"category"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
