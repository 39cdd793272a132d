package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lynossweets/storefront-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

const pgForeignKeyViolation = "23503"

type ProductRepository struct {
	db *Connection
}

func NewProductRepository(db *Connection) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, name, description, price, cost, image_url, category, is_featured, created_at, updated_at`

func scanProduct(row pgx.Row) (model.Product, error) {
	var product model.Product
	err := row.Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.Cost,
		&product.ImageURL, &product.Category, &product.IsFeatured,
		&product.CreatedAt, &product.UpdatedAt,
	)
	return product, err
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	query := `INSERT INTO products (name, description, price, cost, image_url, category, is_featured)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + productColumns

	savedProduct, err := scanProduct(r.db.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Cost,
		product.ImageURL, product.Category, product.IsFeatured,
	))
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return savedProduct, nil
}

func (r *ProductRepository) Update(ctx context.Context, product model.Product) (model.Product, error) {
	query := `UPDATE products
			  SET name = $2, description = $3, price = $4, cost = $5,
				  image_url = $6, category = $7, is_featured = $8, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + productColumns

	savedProduct, err := scanProduct(r.db.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Cost,
		product.ImageURL, product.Category, product.IsFeatured,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return savedProduct, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrProductReferenced
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *ProductRepository) SetImageURL(ctx context.Context, id int64, imageURL string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET image_url = $2, updated_at = now() WHERE id = $1`, id, imageURL)
	if err != nil {
		return fmt.Errorf("failed to set product image url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
