package cart

// BookingDetails carries the booking metadata attached to a booked-session
// cart line. Nil for plain product lines.
type BookingDetails struct {
	OfferingID   string `json:"offering_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Participants int    `json:"participants"`
	Note         string `json:"note,omitempty"`
}

// Item is one cart line. Price is the per-unit price in whole dollars.
type Item struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          int             `json:"price"`
	Quantity       int             `json:"quantity"`
	Type           string          `json:"type,omitempty"`
	Image          string          `json:"image,omitempty"`
	BookingDetails *BookingDetails `json:"booking_details,omitempty"`
}

// Summary is the cart contents plus the order total.
type Summary struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
	Count int    `json:"count"`
}
