package catalog

import (
	"context"
	"strings"

	"storefront/internal/domain"
)

// Service exposes the read-only storefront catalog: category listing,
// product listing with optional category filter, and product detail.
type Service struct {
	products   productRepo
	categories categoryRepo
}

type productRepo interface {
	ListAvailable(ctx context.Context, categorySlug string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

func New(products productRepo, categories categoryRepo) *Service {
	return &Service{products: products, categories: categories}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// ListProducts returns available products. A non-empty categorySlug narrows
// the listing to that category; an unknown slug is ErrNotFound.
func (s *Service) ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	categorySlug = strings.TrimSpace(categorySlug)
	if categorySlug != "" {
		if _, err := s.categories.GetBySlug(ctx, categorySlug); err != nil {
			return nil, err
		}
	}
	return s.products.ListAvailable(ctx, categorySlug)
}

// GetProduct fetches one product by id and slug. The slug must match and the
// product must be available, otherwise ErrNotFound; unavailable products are
// hidden from the storefront entirely.
func (s *Service) GetProduct(ctx context.Context, id, slug string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Available || product.Slug != slug {
		return nil, domain.ErrNotFound
	}
	return product, nil
}
