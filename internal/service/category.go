package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// CategoryInput carries fields for creating a category. A missing slug is
// derived from the name.
type CategoryInput struct {
	Name      string
	Slug      string
	IsActive  *bool
	SortOrder int
}

// CategoryUpdate carries a partial update; nil fields are left unchanged.
type CategoryUpdate struct {
	Name      *string
	Slug      *string
	IsActive  *bool
	SortOrder *int
}

// Category implements storefront category operations. Categories are never
// hard-deleted: products reference them by name text, so removal would
// orphan that text silently.
type Category struct {
	categories model.CategoryStore
	logger     *logger.Logger
}

func NewCategory(categories model.CategoryStore, logger *logger.Logger) *Category {
	return &Category{
		categories: categories,
		logger:     logger,
	}
}

func (s *Category) ListActive(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *Category) Create(ctx context.Context, input CategoryInput) (model.Category, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(input.Name)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	category, err := s.categories.Create(ctx, model.Category{
		Name:      strings.TrimSpace(input.Name),
		Slug:      slug,
		IsActive:  isActive,
		SortOrder: input.SortOrder,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("Category service: category created",
		"category_id", category.ID,
		"slug", category.Slug)

	return category, nil
}

func (s *Category) Update(ctx context.Context, id int64, update CategoryUpdate) (model.Category, error) {
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	if update.Name != nil {
		existing.Name = strings.TrimSpace(*update.Name)
	}
	if update.Slug != nil {
		existing.Slug = strings.TrimSpace(*update.Slug)
	}
	if update.IsActive != nil {
		existing.IsActive = *update.IsActive
	}
	if update.SortOrder != nil {
		existing.SortOrder = *update.SortOrder
	}

	category, err := s.categories.Update(ctx, existing)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// Deactivate soft-deletes a category: it disappears from the public list
// while products whose category text matches its name stay untouched.
func (s *Category) Deactivate(ctx context.Context, id int64) (model.Category, error) {
	category, err := s.categories.Deactivate(ctx, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to deactivate category: %w", err)
	}

	s.logger.Info("Category service: category deactivated",
		"category_id", id)

	return category, nil
}

var slugStrip = regexp.MustCompile(`['"]`)
var slugDashes = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a category name.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
