package order

import "context"

// ReservedProduct is a product row read under an exclusive row lock. Stock
// and Price are consistent with each other for the lifetime of the Tx.
type ReservedProduct struct {
	ID    string
	Name  string
	Price string
	Stock int
}

// Tx is one placement's transaction against the store. ReserveProduct takes
// an exclusive per-row reservation that is held until Commit or Rollback;
// everything written through the Tx becomes visible atomically at Commit.
type Tx interface {
	ReserveProduct(ctx context.Context, productID string) (*ReservedProduct, error)
	DecrementStock(ctx context.Context, productID string, quantity int) error
	InsertOrder(ctx context.Context, o *Order) error
	InsertItems(ctx context.Context, items []Item) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}
