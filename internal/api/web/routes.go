package web

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the server-rendered pages
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Index)
	r.Get("/proposal/{proposal_id}", h.Proposal)
}
