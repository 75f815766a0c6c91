package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// ListAll returns every outlet's orders, newest first, items loaded.
	ListAll(ctx context.Context) ([]Order, error)
	// ListByOutlet returns one outlet's orders, newest first, items loaded.
	ListByOutlet(ctx context.Context, outletID string) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	// UpdateStatus sets the status and returns the updated order.
	// Returns ErrNotFound if the id does not resolve.
	UpdateStatus(ctx context.Context, id, status string) (*Order, error)
	Summary(ctx context.Context) (*Summary, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListAll(ctx context.Context) ([]Order, error) {
	return r.list(ctx, `
    SELECT id, outlet_id, total_price::text, status, created_at, updated_at
    FROM orders
    ORDER BY created_at DESC
  `)
}

func (r *PGRepo) ListByOutlet(ctx context.Context, outletID string) ([]Order, error) {
	return r.list(ctx, `
    SELECT id, outlet_id, total_price::text, status, created_at, updated_at
    FROM orders WHERE outlet_id=$1
    ORDER BY created_at DESC
  `, outletID)
}

func (r *PGRepo) list(ctx context.Context, sql string, args ...any) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OutletID, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachItems loads the items (with their product reference) for every order
// in one query.
func (r *PGRepo) attachItems(ctx context.Context, orders []Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	byID := make(map[string]*Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		byID[orders[i].ID] = &orders[i]
	}

	rows, err := r.db.Query(ctx, `
    SELECT i.id, i.order_id, i.product_id, i.quantity, i.price::text,
           p.id, p.name, p.price::text
    FROM order_items i
    JOIN products p ON p.id = i.product_id
    WHERE i.order_id = ANY($1)
    ORDER BY i.created_at
  `, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		var p ItemProduct
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price,
			&p.ID, &p.Name, &p.Price); err != nil {
			return err
		}
		it.Product = &p
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	err := r.db.QueryRow(ctx, `
    SELECT id, outlet_id, total_price::text, status, created_at, updated_at
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.OutletID, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	list := []Order{o}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders SET status = $2, updated_at = NOW()
    WHERE id = $1
  `, id, status)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PGRepo) Summary(ctx context.Context) (*Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s := &Summary{StatusSummary: map[string]int64{
		StatusPending: 0,
		StatusPaid:    0,
		StatusShipped: 0,
	}}
	err := r.db.QueryRow(ctx, `
    SELECT COUNT(*), COALESCE(SUM(total_price), 0)::float8 FROM orders
  `).Scan(&s.TotalOrders, &s.TotalSales)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		s.StatusSummary[status] = n
	}
	return s, rows.Err()
}
