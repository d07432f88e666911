// Package cart holds the cart state machine. Apply is pure: it never mutates
// the state it is given, and the derived totals are recomputed on every
// transition.
package cart

import (
	"math"

	"github.com/fjod/storefront/internal/domain"
)

func Empty() domain.Cart {
	return domain.Cart{Lines: []domain.CartLine{}}
}

// FromLines rebuilds a cart from persisted lines.
func FromLines(lines []domain.CartLine) domain.Cart {
	c, _ := Apply(Empty(), ReplaceAll{Lines: lines})
	return c
}

func Apply(state domain.Cart, action Action) (domain.Cart, Notice) {
	switch a := action.(type) {
	case AddItem:
		return addItem(state, a.Product)
	case RemoveItem:
		return removeItem(state, a.ProductID)
	case SetQuantity:
		return setQuantity(state, a.ProductID, a.Quantity)
	case Clear:
		return Empty(), cleared
	case ReplaceAll:
		return withTotals(normalize(a.Lines)), Notice{}
	default:
		return withTotals(cloneLines(state.Lines)), Notice{}
	}
}

func addItem(state domain.Cart, product domain.Product) (domain.Cart, Notice) {
	lines := cloneLines(state.Lines)
	for i := range lines {
		if lines[i].Product.ID == product.ID {
			if lines[i].Quantity < domain.MaxQuantity {
				lines[i].Quantity++
			}
			return withTotals(lines), quantityUpdated(product.Name)
		}
	}

	lines = append(lines, domain.CartLine{Product: product, Quantity: 1})
	return withTotals(lines), added(product.Name)
}

func removeItem(state domain.Cart, productID int64) (domain.Cart, Notice) {
	lines := make([]domain.CartLine, 0, len(state.Lines))
	var notice Notice
	for _, l := range state.Lines {
		if l.Product.ID == productID {
			notice = removed(l.Product.Name)
			continue
		}
		lines = append(lines, l)
	}
	return withTotals(lines), notice
}

func setQuantity(state domain.Cart, productID int64, quantity int) (domain.Cart, Notice) {
	if quantity <= 0 {
		c, _ := removeItem(state, productID)
		return c, Notice{}
	}

	quantity = min(quantity, domain.MaxQuantity)

	// a missing line stays missing
	lines := cloneLines(state.Lines)
	for i := range lines {
		if lines[i].Product.ID == productID {
			lines[i].Quantity = quantity
		}
	}
	return withTotals(lines), Notice{}
}

// normalize merges duplicate products at their first position and drops
// lines without a positive quantity. Quantities are capped at MaxQuantity.
func normalize(in []domain.CartLine) []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(in))
	index := make(map[int64]int, len(in))
	for _, l := range in {
		if l.Quantity <= 0 {
			continue
		}
		l.Quantity = min(l.Quantity, domain.MaxQuantity)
		if i, ok := index[l.Product.ID]; ok {
			lines[i].Quantity = min(lines[i].Quantity, domain.MaxQuantity-l.Quantity) + l.Quantity
			continue
		}
		index[l.Product.ID] = len(lines)
		lines = append(lines, l)
	}
	return lines
}

func withTotals(lines []domain.CartLine) domain.Cart {
	c := domain.Cart{Lines: lines}
	for _, l := range lines {
		c.Total = addSaturating(c.Total, lineTotal(l.Product.Price, l.Quantity))
		c.ItemCount += l.Quantity
	}
	return c
}

// lineTotal and addSaturating pin the total at math.MaxInt64 instead of
// wrapping. Checkout rejects such an order when it prices the lines.
func lineTotal(price domain.Money, quantity int) domain.Money {
	if price > 0 && int64(quantity) > math.MaxInt64/int64(price) {
		return math.MaxInt64
	}
	return price.Times(quantity)
}

func addSaturating(a, b domain.Money) domain.Money {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func cloneLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
