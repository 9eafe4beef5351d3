package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/authenticating"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeySession guarda as claims da sessão autenticada no contexto
	ContextKeySession contextKey = "session"
)

// AuthMiddleware valida o token Bearer e injeta as claims da sessão no contexto
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" || (r.URL.Path == "/v1/sessions" && r.Method == http.MethodPost) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				if errors.Is(err, authenticating.ErrExpiredToken) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expired", nil)
					return
				}

				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
