package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
	"storefront/internal/repository/session"
)

// ErrInvalidTransition is returned when a fulfillment status update is not
// allowed from the order's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Service implements the order-placement workflow: validate the cart and the
// customer fields, persist the order atomically, then empty the cart.
type Service struct {
	sessions session.Repository
	orders   orderRepo
	logger   *log.Logger
	currency string
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

func New(sessions session.Repository, orders orderRepo, currency string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{sessions: sessions, orders: orders, currency: currency, logger: logger}
}

// CustomerInput is the checkout form. Field names in validation messages
// follow the json tags.
type CustomerInput struct {
	FirstName  string `json:"firstName" validate:"required,max=100"`
	LastName   string `json:"lastName" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required,max=250"`
	PostalCode string `json:"postalCode" validate:"required,postalcode"`
	City       string `json:"city" validate:"required,max=100"`
}

// PlaceOrder turns the session's cart into an order. The order header and
// one item per cart line are written in a single transaction using the cart
// lines' snapshot prices, so the customer pays what the cart displayed. On
// success the cart is cleared and the created order returned.
//
// An empty cart is domain.ErrEmptyCart; bad customer fields are a
// *domain.ValidationError. Neither writes anything.
func (s *Service) PlaceOrder(ctx context.Context, sessionKey string, in CustomerInput) (*domain.Order, error) {
	cart, err := s.sessions.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if cart.Len() == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := validateCustomer(in); err != nil {
		return nil, err
	}

	input := orderrepo.CreateOrderInput{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Address:    in.Address,
		PostalCode: in.PostalCode,
		City:       in.City,
		Currency:   s.currency,
		TotalCents: cart.TotalCents(),
	}
	for line := range cart.Items() {
		input.Items = append(input.Items, orderrepo.CreateItemInput{
			ProductID:  line.ProductID,
			PriceCents: line.UnitPriceCents,
			Quantity:   line.Quantity,
		})
	}

	order, err := s.orders.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The order is committed; a failed cart clear must not undo it.
	if err := s.sessions.Delete(ctx, sessionKey); err != nil {
		s.logger.Printf("checkout: order %s placed but clearing cart %s failed: %v", order.ID, sessionKey, err)
	}

	s.logger.Printf("checkout: order %s placed, items=%d total_cents=%d", order.ID, len(order.Items), order.TotalCents)
	return order, nil
}

// GetOrder returns the order header plus its items.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// UpdateStatus moves an order along the fulfillment states, rejecting
// transitions the status machine does not allow.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}
	return s.orders.UpdateStatus(ctx, id, status)
}
