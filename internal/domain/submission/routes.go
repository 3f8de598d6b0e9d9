package submission

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the submission router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Submit)

	return r
}
