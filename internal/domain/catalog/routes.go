package catalog

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the catalog router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Get("/services", h.ListServices)
	r.Get("/services/{id}", h.GetService)
	r.Get("/offerings/{id}", h.GetOffering)

	return r
}
