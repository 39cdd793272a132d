package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lynossweets/storefront-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

const categoryColumns = `id, name, slug, is_active, sort_order, created_at`

func scanCategory(row pgx.Row) (model.Category, error) {
	var category model.Category
	err := row.Scan(
		&category.ID, &category.Name, &category.Slug,
		&category.IsActive, &category.SortOrder, &category.CreatedAt,
	)
	return category, err
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories
			  WHERE is_active ORDER BY sort_order ASC, name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	query := `INSERT INTO categories (name, slug, is_active, sort_order)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + categoryColumns

	savedCategory, err := scanCategory(r.db.QueryRow(ctx, query,
		category.Name, category.Slug, category.IsActive, category.SortOrder,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Category{}, model.ErrSlugTaken
		}
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return savedCategory, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	query := `UPDATE categories
			  SET name = $2, slug = $3, is_active = $4, sort_order = $5
			  WHERE id = $1
			  RETURNING ` + categoryColumns

	savedCategory, err := scanCategory(r.db.QueryRow(ctx, query,
		category.ID, category.Name, category.Slug, category.IsActive, category.SortOrder,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Category{}, model.ErrSlugTaken
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return savedCategory, nil
}

func (r *CategoryRepository) Deactivate(ctx context.Context, id int64) (model.Category, error) {
	query := `UPDATE categories SET is_active = FALSE WHERE id = $1 RETURNING ` + categoryColumns

	category, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to deactivate category: %w", err)
	}

	return category, nil
}
