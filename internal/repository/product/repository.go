package product

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// ListAvailable returns available products, optionally restricted to the
	// category with the given slug (empty slug means all categories).
	ListAvailable(ctx context.Context, categorySlug string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
	SetImageURL(ctx context.Context, id, imageURL string) error
}
