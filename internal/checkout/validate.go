package checkout

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/fjod/storefront/internal/domain"
)

type request struct {
	Items json.RawMessage `json:"items"`
}

// ParseRequest decodes a checkout body of the form {"items": [...]} and
// validates its items.
func ParseRequest(body io.Reader) ([]domain.CheckoutLine, error) {
	var req request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, invalid(-1, ErrMalformedBody)
	}
	return ParseItems(req.Items)
}

// ParseItems turns untrusted JSON into typed checkout lines. Values are
// checked, never coerced: "1" is not a product id and 1.5 is not a quantity.
func ParseItems(raw json.RawMessage) ([]domain.CheckoutLine, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, invalid(-1, ErrInvalidShape)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, invalid(-1, ErrMalformedBody)
	}

	elems, ok := v.([]any)
	if !ok {
		return nil, invalid(-1, ErrInvalidShape)
	}
	if len(elems) == 0 {
		return nil, invalid(-1, ErrEmptyCart)
	}

	lines := make([]domain.CheckoutLine, len(elems))
	for i, el := range elems {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, invalid(i, ErrInvalidShape)
		}

		productID, ok := integer(obj["productId"])
		if !ok || productID <= 0 {
			return nil, invalid(i, ErrInvalidProductID)
		}
		quantity, ok := integer(obj["quantity"])
		if !ok || quantity <= 0 || quantity > domain.MaxQuantity {
			return nil, invalid(i, ErrInvalidQuantity)
		}

		lines[i] = domain.CheckoutLine{ProductID: productID, Quantity: int(quantity)}
	}

	return lines, nil
}

// Validate checks lines that are already typed, such as a session cart.
func Validate(lines []domain.CheckoutLine) error {
	if len(lines) == 0 {
		return invalid(-1, ErrEmptyCart)
	}
	for i, l := range lines {
		if l.ProductID <= 0 {
			return invalid(i, ErrInvalidProductID)
		}
		if l.Quantity <= 0 || l.Quantity > domain.MaxQuantity {
			return invalid(i, ErrInvalidQuantity)
		}
	}
	return nil
}

func integer(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}
