package domain

import "time"

// OrderStatus enumerates the fulfillment states of a placed order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether fulfillment may move from s to next.
// Completed and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	}
	return false
}

// Order is the order header: customer fields plus the total fixed at
// creation time. TotalCents equals the sum of item price × quantity and is
// never recomputed from live catalog prices.
type Order struct {
	ID         string      `json:"id"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Email      string      `json:"email"`
	Address    string      `json:"address"`
	PostalCode string      `json:"postalCode"`
	City       string      `json:"city"`
	TotalCents int64       `json:"totalCents"`
	Currency   string      `json:"currency"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Items      []OrderItem `json:"items,omitempty"`
}

// OrderItem is one cart line frozen at order creation. PriceCents is the
// cart line's snapshot price, not a fresh catalog lookup.
type OrderItem struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	ProductID  string `json:"productId"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// SubtotalCents returns price × quantity for this item.
func (i OrderItem) SubtotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}
