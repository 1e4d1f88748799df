package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"salon-booking-api/internal/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the resolved caller: handlers never see raw credentials.
type Identity struct {
	ID   string
	Role string
	Name string
}

// Authenticate resolves the Authorization: Bearer <jwt> header into an
// Identity on the request context. 401 when missing, malformed or invalid.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				deny(w, http.StatusUnauthorized, "token não fornecido")
				return
			}
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				deny(w, http.StatusUnauthorized, "formato do token inválido")
				return
			}

			claims, err := auth.ParseToken(parts[1], secret)
			if err != nil {
				deny(w, http.StatusUnauthorized, "token inválido")
				return
			}

			id := Identity{ID: claims.UserID, Role: claims.Role, Name: claims.Name}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
		})
	}
}

// RequireRole gates a route to one papel. 401 without an identity, 403 with
// the wrong one. Runs after Authenticate.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				deny(w, http.StatusUnauthorized, "não autenticado")
				return
			}
			if id.Role != role {
				deny(w, http.StatusForbidden, "acesso negado: papel insuficiente")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

func deny(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
