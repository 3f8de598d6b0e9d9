package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/biras/biras-api/internal/domain/cart"
	"github.com/biras/biras-api/internal/domain/catalog"
)

// CartAdder is the cart collaborator contract. Adding the same id twice
// increments quantity rather than duplicating a line.
type CartAdder interface {
	AddItem(item cart.Item) error
}

// OfferingSource resolves the offering context a flow is opened with.
type OfferingSource interface {
	GetOffering(id string) (catalog.Offering, error)
}

// Service owns the live booking flows. Each flow belongs to one user; the
// registry lock only serializes access, it is not held across the simulated
// backend call.
type Service struct {
	mu          sync.Mutex
	flows       map[uuid.UUID]*Flow
	engine      *Engine
	catalog     OfferingSource
	cart        CartAdder
	submitDelay time.Duration
}

// NewService creates a booking service.
func NewService(engine *Engine, catalog OfferingSource, cartSvc CartAdder, submitDelay time.Duration) *Service {
	return &Service{
		flows:       make(map[uuid.UUID]*Flow),
		engine:      engine,
		catalog:     catalog,
		cart:        cartSvc,
		submitDelay: submitDelay,
	}
}

// CreateFlow opens a flow for an offering. A missing or unknown offering is
// refused outright: the booking form never renders without a service context.
func (s *Service) CreateFlow(offeringID string) (FlowView, error) {
	if offeringID == "" {
		return FlowView{}, ErrNoServiceSelected
	}
	offering, err := s.catalog.GetOffering(offeringID)
	if err != nil {
		return FlowView{}, ErrNoServiceSelected
	}

	flow := newFlow(offering)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[flow.ID] = flow
	return flow.view(s.engine), nil
}

// GetFlow returns the current state of a flow.
func (s *Service) GetFlow(id uuid.UUID) (FlowView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[id]
	if !ok {
		return FlowView{}, ErrFlowNotFound
	}
	return flow.view(s.engine), nil
}

// UpdateFlow applies a partial field update and returns the refreshed state.
// Edits are refused while a submission is running.
func (s *Service) UpdateFlow(id uuid.UUID, req UpdateFlowRequest) (FlowView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[id]
	if !ok {
		return FlowView{}, ErrFlowNotFound
	}
	if flow.state == StateSubmitting {
		return FlowView{}, ErrSubmitInProgress
	}

	if req.OfferingID != nil {
		offering, err := s.catalog.GetOffering(*req.OfferingID)
		if err != nil {
			return FlowView{}, ErrNoServiceSelected
		}
		flow.changeOffering(s.engine, offering)
	}
	if req.Date != nil {
		flow.setDate(s.engine, *req.Date)
	}
	if req.Time != nil {
		flow.setTime(s.engine, *req.Time)
	}
	if req.Participants != nil {
		flow.setParticipants(s.engine, *req.Participants)
	}
	if req.Note != nil {
		flow.setNote(s.engine, *req.Note)
	}

	return flow.view(s.engine), nil
}

// Submit re-runs every check atomically, then constructs the booking record
// behind a simulated backend delay and hands it to the cart. On success the
// selection is cleared; on hand-off failure it is preserved so the user can
// retry without re-entering anything. The simulated call always completes,
// so ctx is not consulted once the delay starts.
func (s *Service) Submit(ctx context.Context, id uuid.UUID) (Record, error) {
	s.mu.Lock()
	flow, ok := s.flows[id]
	if !ok {
		s.mu.Unlock()
		return Record{}, ErrFlowNotFound
	}
	if flow.state == StateSubmitting {
		s.mu.Unlock()
		return Record{}, ErrSubmitInProgress
	}

	// Submit-time validation, atomic with the state change below.
	if errs := flow.fieldErrors(s.engine); errs != nil {
		s.mu.Unlock()
		return Record{}, &InvalidSelectionError{Fields: errs}
	}

	flow.state = StateSubmitting
	record := s.buildRecord(flow)
	s.mu.Unlock()

	// Stand-in for the real backend call.
	time.Sleep(s.submitDelay)

	item := cart.Item{
		ID:             record.ID,
		Name:           record.Name,
		Description:    record.Description,
		Price:          record.Price,
		Quantity:       1,
		Type:           "booking",
		BookingDetails: &record.BookingDetails,
	}
	err := s.cart.AddItem(item)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// Selection stays intact; the flow drops back to valid with a banner.
		flow.banner = ErrCartRejected.Error()
		flow.state = StateValid
		log.Error().Err(err).Str("flow_id", flow.ID.String()).Msg("Booking cart hand-off failed")
		return Record{}, ErrCartRejected
	}

	flow.succeed()
	log.Info().
		Str("flow_id", flow.ID.String()).
		Str("booking_id", record.ID).
		Str("offering_id", record.BookingDetails.OfferingID).
		Int("total", record.Price).
		Msg("Booking confirmed")
	return record, nil
}

func (s *Service) buildRecord(flow *Flow) Record {
	sel := flow.selection
	base := ExtractPrice(flow.offering.Price)

	description := fmt.Sprintf("%s on %s at %s for %d participant(s)",
		flow.offering.Title, sel.Date, sel.Time, sel.Participants)
	if sel.Note != "" {
		description += fmt.Sprintf(". Note: %s", sel.Note)
	}

	return Record{
		ID:          uuid.New().String(),
		Name:        flow.offering.Title,
		Description: description,
		Price:       base * sel.Participants,
		BookingDetails: cart.BookingDetails{
			OfferingID:   flow.offering.ID,
			Date:         sel.Date,
			Time:         sel.Time,
			Participants: sel.Participants,
			Note:         sel.Note,
		},
	}
}

// Slots previews the bookable start times for a date.
func (s *Service) Slots(date string) []string {
	slots := s.engine.Slots(date)
	if slots == nil {
		return []string{}
	}
	return slots
}
