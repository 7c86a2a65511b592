package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/okan-kantar/portfolio-backend/internal/api/types"
)

type adminKeyType string

const AdminKey adminKeyType = "admin"

// Auth validates a Bearer JWT using the provided HMAC secret and marks the
// request as administrative.
func Auth(hmacSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				unauthorized(w)
				return
			}
			tokenStr := strings.TrimSpace(ah[len("Bearer "):])
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return hmacSecret, nil
			})
			if err != nil || !token.Valid {
				unauthorized(w)
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w)
				return
			}
			sub, _ := claims["sub"].(string)
			ctx := context.WithValue(r.Context(), AdminKey, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(types.APIResponse{
		Success: false,
		Message: "authentication required",
		Error:   &types.APIError{Code: "unauthorized", Message: "authentication required"},
	})
}

// GetAdmin returns the authenticated operator's subject from context.
func GetAdmin(ctx context.Context) string {
	if v := ctx.Value(AdminKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
