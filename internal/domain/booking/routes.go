package booking

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the booking router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/slots", h.GetSlots)
	r.Post("/flows", h.CreateFlow)
	r.Get("/flows/{id}", h.GetFlow)
	r.Patch("/flows/{id}", h.UpdateFlow)
	r.Post("/flows/{id}/submit", h.Submit)

	return r
}
