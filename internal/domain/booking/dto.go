package booking

// CreateFlowRequest opens a booking flow for an offering.
type CreateFlowRequest struct {
	OfferingID string `json:"offering_id"`
}

// UpdateFlowRequest is a partial field update; nil fields are untouched.
// Participant bounds are checked by the booking validator, not here, so the
// flow can report its own inline messages.
type UpdateFlowRequest struct {
	OfferingID   *string `json:"offering_id" validate:"omitempty"`
	Date         *string `json:"date" validate:"omitempty,calendardate"`
	Time         *string `json:"time" validate:"omitempty,clocktime"`
	Participants *int    `json:"participants"`
	Note         *string `json:"note" validate:"omitempty,max=500"`
}
