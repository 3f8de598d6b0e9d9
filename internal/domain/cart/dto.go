package cart

// AddItemRequest adds a product line to the cart. Booked sessions arrive
// through the booking flow, not this endpoint, so there is no booking
// metadata here.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,lte=99"`
}

// UpdateQuantityRequest changes a line's quantity. Zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=99"`
}
