package cart

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

type stubSessions struct {
	carts     map[string]*domain.Cart
	updateErr error
	deleteErr error
	deletes   []string
}

func newStubSessions() *stubSessions {
	return &stubSessions{carts: map[string]*domain.Cart{}}
}

func (s *stubSessions) Load(_ context.Context, key string) (*domain.Cart, error) {
	if cart, ok := s.carts[key]; ok {
		return cart, nil
	}
	return &domain.Cart{}, nil
}

func (s *stubSessions) Save(_ context.Context, key string, cart *domain.Cart) error {
	s.carts[key] = cart
	return nil
}

func (s *stubSessions) Update(_ context.Context, key string, mutate func(*domain.Cart) error) (*domain.Cart, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	cart, ok := s.carts[key]
	if !ok {
		cart = &domain.Cart{}
	}
	if err := mutate(cart); err != nil {
		return nil, err
	}
	s.carts[key] = cart
	return cart, nil
}

func (s *stubSessions) Delete(_ context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes = append(s.deletes, key)
	delete(s.carts, key)
	return nil
}

type stubProducts struct {
	products map[string]*domain.Product
	err      error
}

func (s *stubProducts) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func availableProduct(id string, priceCents int64) *domain.Product {
	return &domain.Product{ID: id, Name: "Product " + id, Slug: id, PriceCents: priceCents, Currency: "USD", Available: true}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := New(newStubSessions(), &stubProducts{products: map[string]*domain.Product{}}, nil)
	_, err := svc.AddItem(context.Background(), "sess", "missing", 1, false)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddItemUnavailableProduct(t *testing.T) {
	p := availableProduct("p1", 100)
	p.Available = false
	svc := New(newStubSessions(), &stubProducts{products: map[string]*domain.Product{"p1": p}}, nil)
	_, err := svc.AddItem(context.Background(), "sess", "p1", 1, false)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddItemRequiresProductID(t *testing.T) {
	svc := New(newStubSessions(), &stubProducts{}, nil)
	_, err := svc.AddItem(context.Background(), "sess", "   ", 1, false)
	if err == nil || err.Error() != "product id required" {
		t.Fatalf("expected product id error, got %v", err)
	}
}

func TestAddItemSnapshotsCurrentPrice(t *testing.T) {
	sessions := newStubSessions()
	products := &stubProducts{products: map[string]*domain.Product{"p1": availableProduct("p1", 1999)}}
	svc := New(sessions, products, nil)

	cart, err := svc.AddItem(context.Background(), "sess", "p1", 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, ok := cart.Line("p1")
	if !ok || line.UnitPriceCents != 1999 {
		t.Fatalf("expected snapshot price 1999, got %+v", line)
	}

	// Catalog price change must not reach the open cart.
	products.products["p1"].PriceCents = 2999
	got, err := svc.Get(context.Background(), "sess")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, _ = got.Line("p1")
	if line.UnitPriceCents != 1999 {
		t.Fatalf("expected original price 1999, got %d", line.UnitPriceCents)
	}
}

func TestAddItemIncrementsByDefault(t *testing.T) {
	sessions := newStubSessions()
	svc := New(sessions, &stubProducts{products: map[string]*domain.Product{"p1": availableProduct("p1", 100)}}, nil)
	ctx := context.Background()

	for range 3 {
		if _, err := svc.AddItem(ctx, "sess", "p1", 2, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	cart, _ := svc.Get(ctx, "sess")
	line, _ := cart.Line("p1")
	if line.Quantity != 6 {
		t.Fatalf("expected quantity 6, got %d", line.Quantity)
	}
}

func TestAddItemOverrideReplaces(t *testing.T) {
	sessions := newStubSessions()
	svc := New(sessions, &stubProducts{products: map[string]*domain.Product{"p1": availableProduct("p1", 100)}}, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", "p1", 5, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart, err := svc.AddItem(ctx, "sess", "p1", 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, _ := cart.Line("p1")
	if line.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", line.Quantity)
	}
}

func TestAddItemZeroQuantityRemoves(t *testing.T) {
	sessions := newStubSessions()
	svc := New(sessions, &stubProducts{products: map[string]*domain.Product{"p1": availableProduct("p1", 100)}}, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", "p1", 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart, err := svc.AddItem(ctx, "sess", "p1", 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", cart.Len())
	}
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	sessions := newStubSessions()
	svc := New(sessions, &stubProducts{products: map[string]*domain.Product{"p1": availableProduct("p1", 100)}}, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", "p1", 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart, err := svc.RemoveItem(ctx, "sess", "other")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Len() != 1 {
		t.Fatalf("expected cart unchanged, got %d lines", cart.Len())
	}
}

func TestClearDeletesSessionCart(t *testing.T) {
	sessions := newStubSessions()
	svc := New(sessions, &stubProducts{products: map[string]*domain.Product{"p1": availableProduct("p1", 100)}}, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", "p1", 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Clear(ctx, "sess"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions.deletes) != 1 || sessions.deletes[0] != "sess" {
		t.Fatalf("expected delete of sess, got %v", sessions.deletes)
	}
	cart, _ := svc.Get(ctx, "sess")
	if cart.Len() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestAddItemSessionStoreError(t *testing.T) {
	sessions := newStubSessions()
	sessions.updateErr = errors.New("redis down")
	svc := New(sessions, &stubProducts{products: map[string]*domain.Product{"p1": availableProduct("p1", 100)}}, nil)
	_, err := svc.AddItem(context.Background(), "sess", "p1", 1, false)
	if err == nil || err.Error() != "redis down" {
		t.Fatalf("expected store error, got %v", err)
	}
}
