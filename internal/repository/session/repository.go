package session

import (
	"context"

	"storefront/internal/domain"
)

// Repository stores one cart per session key. Implementations must serialize
// writes per key so that two near-simultaneous updates of the same session
// never lose one of them.
type Repository interface {
	// Load returns the session's cart, or an empty cart when the session has
	// none yet.
	Load(ctx context.Context, sessionKey string) (*domain.Cart, error)
	// Save persists the cart unconditionally.
	Save(ctx context.Context, sessionKey string, cart *domain.Cart) error
	// Update re-reads the latest cart, applies mutate to it and persists the
	// result, retrying internally if another writer touched the key in
	// between. An error returned by mutate aborts the update unchanged.
	Update(ctx context.Context, sessionKey string, mutate func(cart *domain.Cart) error) (*domain.Cart, error)
	// Delete drops the session's cart. Deleting an absent cart is a no-op.
	Delete(ctx context.Context, sessionKey string) error
}
