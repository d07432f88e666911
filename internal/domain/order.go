package domain

import "time"

// CheckoutLine is one requested line of a checkout, after parsing.
type CheckoutLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type OrderConfirmation struct {
	OrderID     string         `json:"orderId"`
	Lines       []CheckoutLine `json:"items"`
	TotalItems  int            `json:"totalItems"`
	TotalAmount Money          `json:"totalAmount"`
	PlacedAt    time.Time      `json:"placedAt"`
}

// CheckoutLines converts cart lines to the wire form a checkout accepts.
func (c Cart) CheckoutLines() []CheckoutLine {
	lines := make([]CheckoutLine, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = CheckoutLine{ProductID: l.Product.ID, Quantity: l.Quantity}
	}
	return lines
}
