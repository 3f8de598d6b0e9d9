package cart

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the cart router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/items", h.GetSummary)
	r.Post("/items", h.AddItem)
	r.Patch("/items/{id}", h.UpdateQuantity)
	r.Delete("/items/{id}", h.RemoveItem)
	r.Delete("/", h.Clear)

	return r
}
