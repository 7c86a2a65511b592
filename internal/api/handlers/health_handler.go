package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live reports process liveness only.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}

// Ready verifies the database connection.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, types.APIResponse{
			Success: false,
			Message: "database unavailable",
			Error:   &types.APIError{Code: "unavailable", Message: "database unavailable"},
		})
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    map[string]string{"status": "ready"},
	})
}
