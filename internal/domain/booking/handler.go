package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/biras/biras-api/internal/pkg/response"
	"github.com/biras/biras-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new booking handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateFlow handles POST /api/v1/bookings/flows
func (h *Handler) CreateFlow(w http.ResponseWriter, r *http.Request) {
	var req CreateFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	view, err := h.service.CreateFlow(req.OfferingID)
	if err != nil {
		if errors.Is(err, ErrNoServiceSelected) {
			response.UnprocessableEntity(w, "NO_SERVICE_SELECTED", err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, view)
}

// GetFlow handles GET /api/v1/bookings/flows/{id}
func (h *Handler) GetFlow(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, ErrFlowNotFound.Error())
		return
	}

	view, err := h.service.GetFlow(id)
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.OK(w, view)
}

// UpdateFlow handles PATCH /api/v1/bookings/flows/{id}
func (h *Handler) UpdateFlow(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, ErrFlowNotFound.Error())
		return
	}

	var req UpdateFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	view, err := h.service.UpdateFlow(id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrFlowNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrSubmitInProgress):
			response.Conflict(w, err.Error())
		case errors.Is(err, ErrNoServiceSelected):
			response.UnprocessableEntity(w, "NO_SERVICE_SELECTED", err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, view)
}

// Submit handles POST /api/v1/bookings/flows/{id}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, ErrFlowNotFound.Error())
		return
	}

	record, err := h.service.Submit(r.Context(), id)
	if err != nil {
		var invalid *InvalidSelectionError
		switch {
		case errors.Is(err, ErrFlowNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrSubmitInProgress):
			response.Error(w, http.StatusConflict, "SUBMIT_IN_PROGRESS", err.Error())
		case errors.As(err, &invalid):
			response.ValidationError(w, invalid.Fields)
		case errors.Is(err, ErrCartRejected):
			response.Error(w, http.StatusBadGateway, "CART_REJECTED", err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, record)
}

// GetSlots handles GET /api/v1/bookings/slots
func (h *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}
	if err := validator.ValidateVar(date, "calendardate"); err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD")
		return
	}

	response.OK(w, map[string]interface{}{
		"date":  date,
		"slots": h.service.Slots(date),
	})
}
