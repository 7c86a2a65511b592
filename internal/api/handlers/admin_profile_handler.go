package handlers

import (
	"net/http"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
	"github.com/okan-kantar/portfolio-backend/internal/models"
	"github.com/okan-kantar/portfolio-backend/internal/repository"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// AdminProfileHandler manages the two singleton records: the owner's
// personal info and the site settings. PUT creates the record on first
// use and replaces it afterwards, so the at-most-one invariant holds
// without a separate create endpoint.
type AdminProfileHandler struct {
	personalInfo repository.PersonalInfoRepository
	siteSettings repository.SiteSettingsRepository
}

func NewAdminProfileHandler(
	personalInfo repository.PersonalInfoRepository,
	siteSettings repository.SiteSettingsRepository,
) *AdminProfileHandler {
	return &AdminProfileHandler{personalInfo: personalInfo, siteSettings: siteSettings}
}

func (h *AdminProfileHandler) GetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.personalInfo.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if info == nil {
		writeError(w, appErr.New(appErr.CodeNotFound, "personal info not set"))
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: info})
}

func (h *AdminProfileHandler) PutPersonalInfo(w http.ResponseWriter, r *http.Request) {
	var input models.PersonalInfo
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.personalInfo.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		if err := h.personalInfo.Create(r.Context(), &input); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: input})
		return
	}
	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	if err := h.personalInfo.Update(r.Context(), &input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: input})
}

// CreatePersonalInfo is create-only; a second record is a conflict.
func (h *AdminProfileHandler) CreatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var input models.PersonalInfo
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	if err := h.personalInfo.Create(r.Context(), &input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: input})
}

func (h *AdminProfileHandler) DeletePersonalInfo(w http.ResponseWriter, r *http.Request) {
	if err := h.personalInfo.Delete(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

func (h *AdminProfileHandler) GetSiteSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.siteSettings.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if settings == nil {
		writeError(w, appErr.New(appErr.CodeNotFound, "site settings not set"))
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: settings})
}

func (h *AdminProfileHandler) PutSiteSettings(w http.ResponseWriter, r *http.Request) {
	var input models.SiteSettings
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.siteSettings.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		if err := h.siteSettings.Create(r.Context(), &input); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: input})
		return
	}
	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	if err := h.siteSettings.Update(r.Context(), &input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: input})
}

// CreateSiteSettings is create-only; a second record is a conflict.
func (h *AdminProfileHandler) CreateSiteSettings(w http.ResponseWriter, r *http.Request) {
	var input models.SiteSettings
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}
	if err := h.siteSettings.Create(r.Context(), &input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: input})
}

// DeleteSiteSettings always fails; the repository rejects removal so
// the public site never loses its configuration record.
func (h *AdminProfileHandler) DeleteSiteSettings(w http.ResponseWriter, r *http.Request) {
	if err := h.siteSettings.Delete(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
