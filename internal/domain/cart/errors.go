package cart

import "errors"

var (
	ErrItemNotFound    = errors.New("cart item not found")
	ErrMissingItemID   = errors.New("cart item id is required")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)
