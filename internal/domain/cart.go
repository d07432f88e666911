package domain

import "math"

// MaxQuantity is the largest quantity a single cart or checkout line may hold.
const MaxQuantity = math.MaxInt32

type CartLine struct {
	Product  Product `json:"product" bson:"product"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Cart is the aggregate a session owns. Total and ItemCount are derived from
// Lines and must only be produced by the cart reducer.
type Cart struct {
	Lines     []CartLine `json:"items"`
	Total     Money      `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// Line returns the line holding productID, if any.
func (c Cart) Line(productID int64) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.Product.ID == productID {
			return l, true
		}
	}
	return CartLine{}, false
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
