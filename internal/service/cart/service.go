package cart

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/repository/session"
)

// Service implements the session cart operations. Every mutation goes
// through the session store's serialized update so a later request on the
// same session observes the change.
type Service struct {
	sessions session.Repository
	products productRepo
	logger   *log.Logger
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(sessions session.Repository, products productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{sessions: sessions, products: products, logger: logger}
}

// Get returns the session's cart, empty when the session has none.
func (s *Service) Get(ctx context.Context, sessionKey string) (*domain.Cart, error) {
	return s.sessions.Load(ctx, sessionKey)
}

// AddItem inserts or updates a cart line. The product must exist and be
// available; its current catalog price becomes the line's snapshot price.
// When override is false an existing line's quantity is incremented, when
// true it is replaced. A quantity of zero or less removes the line.
func (s *Service) AddItem(ctx context.Context, sessionKey, productID string, quantity int, override bool) (*domain.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, errors.New("product id required")
	}
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionKey, productID)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available {
		return nil, domain.ErrNotFound
	}

	cart, err := s.sessions.Update(ctx, sessionKey, func(c *domain.Cart) error {
		c.Upsert(product.ID, quantity, product.PriceCents, override)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("cart: session=%s add product=%s qty=%d override=%t lines=%d", sessionKey, productID, quantity, override, cart.Len())
	return cart, nil
}

// RemoveItem deletes the line for productID. Removing an absent product
// leaves the cart unchanged and is not an error.
func (s *Service) RemoveItem(ctx context.Context, sessionKey, productID string) (*domain.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, errors.New("product id required")
	}
	cart, err := s.sessions.Update(ctx, sessionKey, func(c *domain.Cart) error {
		c.Remove(productID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("cart: session=%s remove product=%s lines=%d", sessionKey, productID, cart.Len())
	return cart, nil
}

// Clear drops the whole session cart. Clearing an absent cart is a no-op.
func (s *Service) Clear(ctx context.Context, sessionKey string) error {
	if err := s.sessions.Delete(ctx, sessionKey); err != nil {
		return err
	}
	s.logger.Printf("cart: session=%s cleared", sessionKey)
	return nil
}
