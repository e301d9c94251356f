package proposal

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers proposal routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/analyze", h.Analyze)
	r.Post("/generate-document", h.GenerateDocument)
}
