package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
	"github.com/okan-kantar/portfolio-backend/pkg/logger"
)

const tokenTTL = 24 * time.Hour

// AuthHandler issues admin tokens. There is a single admin account,
// configured through the environment.
type AuthHandler struct {
	adminEmail   string
	passwordHash string
	jwtSecret    []byte
}

func NewAuthHandler(adminEmail, passwordHash, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		jwtSecret:    []byte(jwtSecret),
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, appErr.New(appErr.CodeInvalid, "email and password are required"))
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.adminEmail)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password))
	if !emailOK || passErr != nil {
		logger.L().Warn("failed admin login", zap.String("email", req.Email))
		writeError(w, appErr.New(appErr.CodeUnauthorized, "invalid credentials"))
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": h.adminEmail,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
	if err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInternal, "failed to sign token"))
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"token":      token,
			"expires_at": now.Add(tokenTTL).UTC().Format(time.RFC3339),
		},
	})
}
