package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error's code to a status and renders the envelope.
// Raw internal errors never reach the caller.
func writeError(w http.ResponseWriter, err error) {
	apiErr := types.FromAppError(err)
	writeJSON(w, types.HTTPStatus(err), types.APIResponse{
		Success: false,
		Message: apiErr.Message,
		Error:   apiErr,
	})
}

// decodeJSON decodes a request body, rejecting malformed payloads.
func decodeJSON(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return appErr.Wrap(err, appErr.CodeInvalid, "invalid json body")
	}
	return nil
}
