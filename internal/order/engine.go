package order

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one requested (product, quantity) pair.
type Line struct {
	ProductID string
	Quantity  int
}

// Engine places orders. One Place call is one all-or-nothing transaction:
// every line's stock is validated and decremented under a per-product
// reservation and the order plus its items are persisted in the same unit,
// or nothing changes at all.
type Engine struct {
	uow UnitOfWork
}

func NewEngine(uow UnitOfWork) *Engine { return &Engine{uow: uow} }

// Place validates the request, reserves stock line by line in ascending
// product-id order, snapshots each unit price, decrements stock, and persists
// the order with its items. The returned order carries its items and each
// item's product reference.
//
// Reservations are always acquired in ascending product-id order so that two
// concurrent placements over an overlapping product set can never circular-wait.
func (e *Engine) Place(ctx context.Context, outletID string, lines []Line) (*Order, error) {
	if outletID == "" {
		return nil, fmt.Errorf("%w: outlet id is required", ErrInvalidRequest)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: items are required", ErrInvalidRequest)
	}
	for _, ln := range lines {
		if ln.ProductID == "" {
			return nil, fmt.Errorf("%w: product_id is required", ErrInvalidRequest)
		}
		if ln.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidRequest)
		}
	}

	sorted := append([]Line(nil), lines...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	tx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]Item, 0, len(sorted))
	for _, ln := range sorted {
		p, err := tx.ReserveProduct(ctx, ln.ProductID)
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, err
		}
		if p.Stock < ln.Quantity {
			_ = tx.Rollback(ctx)
			return nil, &InsufficientStockError{ProductID: p.ID, Name: p.Name, Available: p.Stock}
		}

		unit, err := decimal.NewFromString(p.Price)
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("bad price for product %s: %w", p.ID, err)
		}
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(ln.Quantity))))

		items = append(items, Item{
			ID:        uuid.NewString(),
			ProductID: p.ID,
			Quantity:  ln.Quantity,
			Price:     p.Price,
			Product:   &ItemProduct{ID: p.ID, Name: p.Name, Price: p.Price},
		})

		if err := tx.DecrementStock(ctx, p.ID, ln.Quantity); err != nil {
			_ = tx.Rollback(ctx)
			return nil, err
		}
	}

	now := time.Now().UTC()
	o := &Order{
		ID:         uuid.NewString(),
		OutletID:   outletID,
		TotalPrice: total.StringFixed(2),
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i := range items {
		items[i].OrderID = o.ID
	}

	if err := tx.InsertOrder(ctx, o); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err := tx.InsertItems(ctx, items); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	o.Items = items
	return o, nil
}
