package product

import "time"

type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price     string    `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name  string `json:"name"  example:"Buku Matematika"`
	Price string `json:"price" example:"50000.00"`
	Stock int    `json:"stock" example:"100"`
}
