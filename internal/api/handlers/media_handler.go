package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
	"github.com/okan-kantar/portfolio-backend/pkg/logger"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// MediaHandler stores uploaded files (profile photos, project images,
// the CV document) under the media directory. Files are opaque blobs;
// content is never inspected or transformed.
type MediaHandler struct {
	dir string
}

func NewMediaHandler(dir string) *MediaHandler {
	return &MediaHandler{dir: dir}
}

// Upload accepts a multipart form with a "file" field and returns the
// path the public site should reference.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInvalid, "invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, appErr.New(appErr.CodeInvalid, "missing file field"))
		return
	}
	defer file.Close()

	name := fmt.Sprintf("%s%s", uuid.New().String(), safeExt(header.Filename))
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInternal, "media dir unavailable"))
		return
	}
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInternal, "failed to store file"))
		return
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInternal, "failed to store file"))
		return
	}

	logger.L().Info("media uploaded",
		zap.String("name", name),
		zap.String("original", header.Filename),
		zap.Int64("size", size))

	writeJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"path": "/media/" + name,
			"size": size,
		},
	})
}

// FileServer serves stored media read-only.
func (h *MediaHandler) FileServer() http.Handler {
	return http.StripPrefix("/media/", http.FileServer(http.Dir(h.dir)))
}

// safeExt keeps only a plain extension from the client filename so the
// stored name never carries path fragments.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}
