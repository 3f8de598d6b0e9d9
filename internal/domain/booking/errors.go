package booking

import "errors"

var (
	ErrFlowNotFound      = errors.New("booking flow not found")
	ErrNoServiceSelected = errors.New("no service selected")
	ErrSubmitInProgress  = errors.New("submission already in progress")
	ErrCartRejected      = errors.New("could not add booking to cart")
)

// InvalidSelectionError reports the per-field problems that blocked a submit.
type InvalidSelectionError struct {
	Fields map[string]string
}

func (e *InvalidSelectionError) Error() string {
	return "booking selection is not valid"
}
