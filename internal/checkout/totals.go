package checkout

import (
	"math"

	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/domain"
)

type Totals struct {
	Items  int
	Amount domain.Money
}

// Calculate prices lines at current catalog prices. The first unknown
// product aborts the whole calculation.
func Calculate(c catalog.Catalog, lines []domain.CheckoutLine) (Totals, error) {
	var t Totals
	for i, l := range lines {
		p, ok := c.FindByID(l.ProductID)
		if !ok {
			return Totals{}, &ProductNotFoundError{ProductID: l.ProductID}
		}

		if int64(p.Price) > 0 && int64(l.Quantity) > (math.MaxInt64-int64(t.Amount))/int64(p.Price) {
			return Totals{}, invalid(i, ErrAmountOverflow)
		}
		t.Amount += p.Price.Times(l.Quantity)
		t.Items += l.Quantity
	}
	return t, nil
}
