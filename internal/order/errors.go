package order

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("order not found")

	// ErrInvalidRequest is returned before any reservation is attempted.
	ErrInvalidRequest = errors.New("invalid order request")
)

type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

// InsufficientStockError names the product and what was available at the
// moment of reservation, so the caller can retry with adjusted quantities.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product: %s. Available: %d", e.Name, e.Available)
}
