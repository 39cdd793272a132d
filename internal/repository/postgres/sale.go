package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lynossweets/storefront-server/internal/model"
)

var _ model.SaleStore = (*SaleRepository)(nil)

type SaleRepository struct {
	db *Connection
}

func NewSaleRepository(db *Connection) *SaleRepository {
	return &SaleRepository{
		db: db,
	}
}

func scanSaleWithProduct(row pgx.Row) (model.Sale, error) {
	var sale model.Sale
	err := row.Scan(
		&sale.ID, &sale.ProductID, &sale.Quantity, &sale.SalePrice, &sale.CostPrice, &sale.CreatedAt,
		&sale.Product.ID, &sale.Product.Name, &sale.Product.Description,
		&sale.Product.Price, &sale.Product.Cost, &sale.Product.ImageURL,
		&sale.Product.Category, &sale.Product.IsFeatured,
		&sale.Product.CreatedAt, &sale.Product.UpdatedAt,
	)
	return sale, err
}

const saleJoinQuery = `
	SELECT s.id, s.product_id, s.quantity, s.sale_price, s.cost_price, s.created_at,
		   p.id, p.name, p.description, p.price, p.cost, p.image_url,
		   p.category, p.is_featured, p.created_at, p.updated_at
	FROM sales s
	JOIN products p ON p.id = s.product_id`

func (r *SaleRepository) Create(ctx context.Context, sale model.Sale) (model.Sale, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO sales (product_id, quantity, sale_price, cost_price)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		sale.ProductID, sale.Quantity, sale.SalePrice, sale.CostPrice,
	).Scan(&id)
	if err != nil {
		return model.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	savedSale, err := scanSaleWithProduct(r.db.QueryRow(ctx, saleJoinQuery+` WHERE s.id = $1`, id))
	if err != nil {
		return model.Sale{}, fmt.Errorf("failed to read back sale: %w", err)
	}

	return savedSale, nil
}

func (r *SaleRepository) List(ctx context.Context, limit int) ([]model.Sale, error) {
	rows, err := r.db.Query(ctx, saleJoinQuery+` ORDER BY s.created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := []model.Sale{}
	for rows.Next() {
		sale, err := scanSaleWithProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales: %w", err)
	}

	return sales, nil
}

func (r *SaleRepository) Totals(ctx context.Context) (model.SaleTotals, error) {
	var totals model.SaleTotals
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
				COALESCE(SUM(sale_price * quantity), 0),
				COALESCE(SUM(cost_price * quantity), 0)
		 FROM sales`,
	).Scan(&totals.Count, &totals.Revenue, &totals.Cost)
	if err != nil {
		return model.SaleTotals{}, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	return totals, nil
}

func (r *SaleRepository) TopProducts(ctx context.Context, limit int) ([]model.TopProduct, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.cost, p.image_url,
			   p.category, p.is_featured, p.created_at, p.updated_at,
			   SUM(s.quantity) AS total_sold, COUNT(s.id) AS sale_count
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.id
		ORDER BY total_sold DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	defer rows.Close()

	topProducts := []model.TopProduct{}
	for rows.Next() {
		var tp model.TopProduct
		err := rows.Scan(
			&tp.ID, &tp.Name, &tp.Description, &tp.Price, &tp.Cost, &tp.ImageURL,
			&tp.Category, &tp.IsFeatured, &tp.CreatedAt, &tp.UpdatedAt,
			&tp.TotalSold, &tp.SaleCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan top product: %w", err)
		}
		topProducts = append(topProducts, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top products: %w", err)
	}

	return topProducts, nil
}
