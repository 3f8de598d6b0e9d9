package booking

import (
	"github.com/biras/biras-api/internal/domain/cart"
	"github.com/biras/biras-api/internal/domain/catalog"
)

// State names for the booking flow.
type State string

const (
	StateEmpty      State = "empty"
	StatePartial    State = "partial"
	StateValid      State = "valid"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
)

// Selection is one user's in-progress booking input. Mutated field by field;
// consumed and discarded when a record is produced.
type Selection struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Participants int    `json:"participants"`
	Note         string `json:"note"`
}

// Record is the finalized, cart-ready booking. Created exactly once per
// successful submission; ownership moves to the cart immediately.
type Record struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Price          int                 `json:"price"`
	BookingDetails cart.BookingDetails `json:"booking_details"`
}

// FlowView is the flow state handed back to the client after every change:
// the selection, the slots for the selected date, per-field errors and the
// price summary.
type FlowView struct {
	ID        string            `json:"id"`
	State     State             `json:"state"`
	Offering  catalog.Offering  `json:"offering"`
	Selection Selection         `json:"selection"`
	Slots     []string          `json:"slots"`
	Errors    map[string]string `json:"errors,omitempty"`
	Banner    string            `json:"banner,omitempty"`
	BasePrice int               `json:"base_price"`
	Total     int               `json:"total"`
}
