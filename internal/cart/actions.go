package cart

import "github.com/fjod/storefront/internal/domain"

// Action is a discrete cart transition request. The set is closed.
type Action interface {
	isAction()
}

// AddItem adds one unit of Product.
type AddItem struct {
	Product domain.Product
}

type RemoveItem struct {
	ProductID int64
}

// SetQuantity sets an absolute quantity. Quantity <= 0 removes the line.
type SetQuantity struct {
	ProductID int64
	Quantity  int
}

type Clear struct{}

// ReplaceAll swaps the whole line collection, e.g. when restoring a saved cart.
type ReplaceAll struct {
	Lines []domain.CartLine
}

func (AddItem) isAction()     {}
func (RemoveItem) isAction()  {}
func (SetQuantity) isAction() {}
func (Clear) isAction()       {}
func (ReplaceAll) isAction()  {}
