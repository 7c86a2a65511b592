package handlers

import (
	"net/http"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
	"github.com/okan-kantar/portfolio-backend/internal/services"
)

type ContactHandler struct {
	contact services.ContactService
}

func NewContactHandler(contact services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit accepts a visitor message. The stored record is the source of
// truth; notification delivery happens out of band and never affects
// the response.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input services.ContactInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	if _, err := h.contact.Submit(r.Context(), &input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Message: "Your message has been sent. Thank you!",
	})
}
