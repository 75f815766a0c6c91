package order

// CreateOrderItem payload of one requested line.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID string `json:"product_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity  int    `json:"quantity"   example:"2"`
}

// CreateOrderRequest payload of order creation.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items"`
}

// UpdateStatusRequest payload of a status change.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"paid"`
}
