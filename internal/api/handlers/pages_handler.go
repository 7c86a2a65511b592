package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
	"github.com/okan-kantar/portfolio-backend/internal/services"
)

// PagesHandler serves the read-only page aggregates consumed by the
// public site.
type PagesHandler struct {
	pages services.PagesService
}

func NewPagesHandler(pages services.PagesService) *PagesHandler {
	return &PagesHandler{pages: pages}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, err := h.pages.HomePage(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: ctx})
}

func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	ctx, err := h.pages.AboutPage(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: ctx})
}

func (h *PagesHandler) Skills(w http.ResponseWriter, r *http.Request) {
	ctx, err := h.pages.SkillsPage(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: ctx})
}

func (h *PagesHandler) Projects(w http.ResponseWriter, r *http.Request) {
	ctx, err := h.pages.ProjectsPage(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: ctx})
}

func (h *PagesHandler) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	ctx, err := h.pages.ProjectDetail(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: ctx})
}

func (h *PagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	ctx, err := h.pages.ContactPage(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: ctx})
}
