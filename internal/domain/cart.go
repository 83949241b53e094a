package domain

import "iter"

// CartLine is one (product, quantity, price snapshot) tuple within a cart.
// UnitPriceCents is captured when the line is added and never refreshed from
// the live catalog afterwards.
type CartLine struct {
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// SubtotalCents returns quantity × unit price for this line.
func (l CartLine) SubtotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Cart holds one session's lines in insertion order. The zero value is an
// empty, usable cart.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Upsert inserts or updates the line for productID. When the line already
// exists, override=false adds quantity to the existing one and override=true
// replaces it. A quantity of zero or less removes the line. The price
// snapshot is taken from priceCents, so the line keeps the price the
// storefront displayed when the customer acted.
func (c *Cart) Upsert(productID string, quantity int, priceCents int64, override bool) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		if override {
			c.Lines[i].Quantity = quantity
		} else {
			c.Lines[i].Quantity += quantity
		}
		c.Lines[i].UnitPriceCents = priceCents
		return
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID:      productID,
		Quantity:       quantity,
		UnitPriceCents: priceCents,
	})
}

// Remove deletes the line for productID, keeping the order of the remaining
// lines. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Line returns the line for productID, if present.
func (c *Cart) Line(productID string) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return CartLine{}, false
}

// Items yields the lines in insertion order. The returned sequence is
// restartable: each range loop walks the cart from the first line again.
func (c *Cart) Items() iter.Seq[CartLine] {
	return func(yield func(CartLine) bool) {
		for _, line := range c.Lines {
			if !yield(line) {
				return
			}
		}
	}
}

// TotalCents returns the sum of all line subtotals, zero for an empty cart.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.SubtotalCents()
	}
	return total
}

// Len counts distinct product lines, not total units.
func (c *Cart) Len() int {
	return len(c.Lines)
}

// Clear empties the cart. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.Lines = nil
}
