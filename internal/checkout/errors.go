package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedBody    = errors.New("invalid request body")
	ErrInvalidShape     = errors.New("items must be an array")
	ErrEmptyCart        = errors.New("cart cannot be empty")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrAmountOverflow   = errors.New("order total is too large")
	ErrProductNotFound  = errors.New("product not found")
)

// Kind classifies checkout failures for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

// ValidationError is a user-correctable problem with the submitted items.
// Index is the offending element, or -1 when the whole input is at fault.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(index int, err error) error {
	return &ValidationError{Index: index, Err: err}
}

type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

func KindOf(err error) Kind {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return KindValidation
	case errors.Is(err, ErrProductNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}
