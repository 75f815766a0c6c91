package order

import "time"

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusShipped = "shipped"
)

// ValidStatus reports whether s is one of the known order statuses. No
// ordering is enforced between them: any status may be set to any other.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped:
		return true
	}
	return false
}

type Order struct {
	ID       string `json:"id"`
	OutletID string `json:"outlet_id"`
	// NUMERIC -> string; snapshotted at placement, never recomputed
	TotalPrice string    `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Items      []Item    `json:"items,omitempty"`
}

type Item struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	// unit price copied from the product at placement time
	Price   string       `json:"price"`
	Product *ItemProduct `json:"product,omitempty"`
}

// ItemProduct is the product reference loaded alongside an item. Its Price is
// the catalog's current price, which may have drifted from Item.Price.
type ItemProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Summary is the HO dashboard aggregate.
type Summary struct {
	TotalOrders   int64            `json:"total_orders"`
	TotalSales    float64          `json:"total_sales"`
	StatusSummary map[string]int64 `json:"status_summary"`
}
