package order

import (
	"context"

	"storefront/internal/domain"
)

type CreateOrderInput struct {
	FirstName  string
	LastName   string
	Email      string
	Address    string
	PostalCode string
	City       string
	Currency   string
	TotalCents int64
	Items      []CreateItemInput
}

type CreateItemInput struct {
	ProductID  string
	PriceCents int64
	Quantity   int
}

type Repository interface {
	// Create writes the order header and every item as a single transaction:
	// either all rows are committed or none are.
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
