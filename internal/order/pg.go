package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGUnitOfWork issues placement transactions over a pgx pool. The row
// reservation is a SELECT ... FOR UPDATE, so two concurrent placements on the
// same product serialize at Postgres.
type PGUnitOfWork struct{ db *pgxpool.Pool }

func NewPGUnitOfWork(db *pgxpool.Pool) *PGUnitOfWork { return &PGUnitOfWork{db: db} }

func (u *PGUnitOfWork) Begin(ctx context.Context) (Tx, error) {
	tx, err := u.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	return &pgTx{tx: tx}, nil
}

type pgTx struct{ tx pgx.Tx }

func (t *pgTx) ReserveProduct(ctx context.Context, productID string) (*ReservedProduct, error) {
	var p ReservedProduct
	err := t.tx.QueryRow(ctx, `
    SELECT id, name, price::text, stock
    FROM products WHERE id=$1
    FOR UPDATE
  `, productID).Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ProductNotFoundError{ProductID: productID}
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *pgTx) DecrementStock(ctx context.Context, productID string, quantity int) error {
	_, err := t.tx.Exec(ctx, `
    UPDATE products SET stock = stock - $2, updated_at = NOW()
    WHERE id = $1
  `, productID, quantity)
	return err
}

func (t *pgTx) InsertOrder(ctx context.Context, o *Order) error {
	_, err := t.tx.Exec(ctx, `
    INSERT INTO orders (id, outlet_id, total_price, status, created_at, updated_at)
    VALUES ($1,$2,$3,$4,NOW(),NOW())
  `, o.ID, o.OutletID, o.TotalPrice, o.Status)
	return err
}

func (t *pgTx) InsertItems(ctx context.Context, items []Item) error {
	for _, it := range items {
		if _, err := t.tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, product_id, quantity, price, created_at)
      VALUES ($1,$2,$3,$4,$5,NOW())
    `, it.ID, it.OrderID, it.ProductID, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return nil
}

func (t *pgTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *pgTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }
