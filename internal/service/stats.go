package service

import (
	"context"
	"fmt"
	"math"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// topProductsLimit is the size of the dashboard leaderboard.
const topProductsLimit = 5

// Stats assembles the back-office dashboard aggregate. Revenue and cost use
// the per-sale price snapshots, so the numbers stay stable when product
// prices change later.
type Stats struct {
	products model.ProductStore
	sales    model.SaleStore
	users    model.UserStore
	logger   *logger.Logger
}

func NewStats(products model.ProductStore, sales model.SaleStore, users model.UserStore, logger *logger.Logger) *Stats {
	return &Stats{
		products: products,
		sales:    sales,
		users:    users,
		logger:   logger,
	}
}

func (s *Stats) Get(ctx context.Context) (model.Stats, error) {
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count products: %w", err)
	}

	totals, err := s.sales.Totals(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	totalUsers, err := s.users.CountByRole(ctx, model.RoleUser)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count users: %w", err)
	}

	totalAdmins, err := s.users.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count admins: %w", err)
	}

	topProducts, err := s.sales.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to rank products: %w", err)
	}

	margin := totals.Revenue - totals.Cost
	marginPercentage := 0.0
	if totals.Revenue > 0 {
		marginPercentage = round2(margin / totals.Revenue * 100)
	}

	return model.Stats{
		TotalProducts:    totalProducts,
		TotalSales:       totals.Count,
		TotalRevenue:     totals.Revenue,
		TotalCost:        totals.Cost,
		TotalMargin:      margin,
		MarginPercentage: marginPercentage,
		TotalUsers:       totalUsers,
		TotalAdmins:      totalAdmins,
		TopProducts:      topProducts,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
