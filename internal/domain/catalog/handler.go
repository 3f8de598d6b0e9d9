package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/biras/biras-api/internal/pkg/response"
)

// Handler handles catalog HTTP requests.
type Handler struct {
	repo *Repository
}

// NewHandler creates a new catalog handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// ListProducts handles GET /api/v1/catalog/products
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 0 {
		limit = 0
	}

	response.OK(w, h.repo.ListProducts(group, limit))
}

// GetProduct handles GET /api/v1/catalog/products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, product)
}

// ListServices handles GET /api/v1/catalog/services
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.repo.ListServices())
}

// GetService handles GET /api/v1/catalog/services/{id}
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	service, err := h.repo.GetService(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, service)
}

// GetOffering handles GET /api/v1/catalog/offerings/{id}
func (h *Handler) GetOffering(w http.ResponseWriter, r *http.Request) {
	offering, err := h.repo.GetOffering(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrOfferingNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, offering)
}
