package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/biras/biras-api/internal/domain/catalog"
	"github.com/biras/biras-api/internal/pkg/response"
	"github.com/biras/biras-api/internal/pkg/validator"
)

// ProductCatalog resolves product ids for add-to-cart requests.
type ProductCatalog interface {
	GetProduct(id string) (catalog.Product, error)
}

// Handler handles cart HTTP requests.
type Handler struct {
	service *Service
	catalog ProductCatalog
}

// NewHandler creates a new cart handler.
func NewHandler(service *Service, catalog ProductCatalog) *Handler {
	return &Handler{
		service: service,
		catalog: catalog,
	}
}

// AddItem handles POST /api/v1/cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := h.catalog.GetProduct(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	item := Item{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: req.Quantity,
		Type:     "product",
		Image:    product.Image,
	}
	if err := h.service.AddItem(item); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.Created(w, h.service.Summary())
}

// GetSummary handles GET /api/v1/cart/items
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.service.Summary())
}

// UpdateQuantity handles PATCH /api/v1/cart/items/{id}
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.service.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.OK(w, h.service.Summary())
}

// RemoveItem handles DELETE /api/v1/cart/items/{id}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RemoveItem(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, h.service.Summary())
}

// Clear handles DELETE /api/v1/cart
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.service.Clear()
	response.NoContent(w)
}
