package model

import (
	"context"
	"time"
)

// SaleStore defines persistence operations for sales records.
type SaleStore interface {
	Create(ctx context.Context, sale Sale) (Sale, error)
	List(ctx context.Context, limit int) ([]Sale, error)
	Totals(ctx context.Context) (SaleTotals, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
}

// Sale records a single sale. SalePrice and CostPrice are snapshots of the
// product's prices at the moment of sale; later product edits do not touch
// them, which keeps historical revenue reporting stable.
type Sale struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	SalePrice float64   `json:"salePrice"`
	CostPrice float64   `json:"costPrice"`
	CreatedAt time.Time `json:"createdAt"`
	Product   Product   `json:"product"`
}

// SaleTotals aggregates all sales rows.
type SaleTotals struct {
	Count   int64
	Revenue float64
	Cost    float64
}

// TopProduct is a product ranked by total quantity sold.
type TopProduct struct {
	Product
	TotalSold int64 `json:"totalSold"`
	SaleCount int64 `json:"saleCount"`
}
