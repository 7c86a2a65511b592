package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
	"github.com/okan-kantar/portfolio-backend/internal/repository"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// CRUDHandler serves the admin CRUD surface for a list-style content
// entity. Validation and ordering live in the repository layer; the
// handler only translates HTTP.
type CRUDHandler[T any] struct {
	repo  repository.BaseRepository[T]
	list  func(ctx context.Context) ([]T, error)
	setID func(obj *T, id uuid.UUID)
}

func NewCRUDHandler[T any](
	repo repository.BaseRepository[T],
	list func(ctx context.Context) ([]T, error),
	setID func(obj *T, id uuid.UUID),
) *CRUDHandler[T] {
	return &CRUDHandler[T]{repo: repo, list: list, setID: setID}
}

// Routes mounts the handler on a subrouter.
func (h *CRUDHandler[T]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, appErr.New(appErr.CodeInvalid, "invalid id")
	}
	return id, nil
}

func (h *CRUDHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.list(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    items,
		Meta:    &types.Meta{Total: int64(len(items))},
	})
}

func (h *CRUDHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var obj T
	if err := decodeJSON(r, &obj); err != nil {
		writeError(w, err)
		return
	}
	if err := h.repo.Create(r.Context(), &obj); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: obj})
}

func (h *CRUDHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var obj T
	if err := h.repo.GetByID(r.Context(), id, &obj); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: obj})
}

func (h *CRUDHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var existing T
	if err := h.repo.GetByID(r.Context(), id, &existing); err != nil {
		writeError(w, err)
		return
	}
	var obj T
	if err := decodeJSON(r, &obj); err != nil {
		writeError(w, err)
		return
	}
	// The path identifies the record; a body id is ignored.
	h.setID(&obj, id)
	if err := h.repo.Update(r.Context(), &obj); err != nil {
		writeError(w, err)
		return
	}
	// Reload so the response carries the stored row, not the request body.
	var updated T
	if err := h.repo.GetByID(r.Context(), id, &updated); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: updated})
}

func (h *CRUDHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
