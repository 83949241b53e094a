package session

import (
	"bytes"
	"encoding/json"
	"fmt"

	"storefront/internal/domain"
)

// The stored blob is a JSON object mapping product id to
// {"quantity": <int>, "price": "<decimal string>"}. Object entry order is the
// cart's line insertion order, which is why encoding and decoding go through
// the token stream instead of a Go map (map marshalling would sort the keys).

type blobEntry struct {
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

func encodeCart(cart *domain.Cart) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, line := range cart.Lines {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("encode product id %q: %w", line.ProductID, err)
		}
		entry, err := json.Marshal(blobEntry{
			Quantity: line.Quantity,
			Price:    domain.CentsToDecimal(line.UnitPriceCents),
		})
		if err != nil {
			return nil, fmt.Errorf("encode line for %q: %w", line.ProductID, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(entry)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeCart(data []byte) (*domain.Cart, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode cart blob: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode cart blob: expected object, got %v", tok)
	}

	cart := &domain.Cart{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode cart blob key: %w", err)
		}
		productID, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode cart blob: non-string key %v", keyTok)
		}

		var entry blobEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("decode cart line for %q: %w", productID, err)
		}
		if entry.Quantity < 1 {
			return nil, fmt.Errorf("decode cart line for %q: quantity %d out of range", productID, entry.Quantity)
		}
		cents, err := domain.DecimalToCents(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("decode cart line for %q: %w", productID, err)
		}
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID:      productID,
			Quantity:       entry.Quantity,
			UnitPriceCents: cents,
		})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode cart blob close: %w", err)
	}
	return cart, nil
}
