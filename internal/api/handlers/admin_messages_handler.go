package handlers

import (
	"net/http"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
	"github.com/okan-kantar/portfolio-backend/internal/models"
	"github.com/okan-kantar/portfolio-backend/internal/repository"
)

// AdminMessagesHandler exposes the contact inbox. Messages are
// immutable apart from the read flag.
type AdminMessagesHandler struct {
	messages repository.ContactMessageRepository
}

func NewAdminMessagesHandler(messages repository.ContactMessageRepository) *AdminMessagesHandler {
	return &AdminMessagesHandler{messages: messages}
}

func (h *AdminMessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if msgs == nil {
		msgs = []models.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    msgs,
		Meta:    &types.Meta{Total: int64(len(msgs))},
	})
}

func (h *AdminMessagesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	msg, err := h.messages.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: msg})
}

func (h *AdminMessagesHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, true)
}

func (h *AdminMessagesHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, false)
}

func (h *AdminMessagesHandler) setRead(w http.ResponseWriter, r *http.Request, read bool) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.messages.SetRead(r.Context(), id, read); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

func (h *AdminMessagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.messages.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
