package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/analytics-forge-api/internal/usecases/authenticating"
	"github.com/vfg2006/analytics-forge-api/pkg/apiErrors"
	"github.com/vfg2006/analytics-forge-api/pkg/log"
)

type contextKey string

const (
	ContextKeyClient contextKey = "client"

	APIKeyHeader = "X-API-Key"
)

// RequireCredentials protege a rota quando AUTH_ENABLED=true. Aceita
// "Authorization: Bearer <jwt>" ou o cabeçalho X-API-Key.
func RequireCredentials(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authService == nil || !authService.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			if apiKey := r.Header.Get(APIKeyHeader); apiKey != "" {
				if err := authService.CheckAPIKey(apiKey); err != nil {
					writeAuthError(w, r, err)
					return
				}

				ctx := context.WithValue(r.Context(), ContextKeyClient, "api-key")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				writeAuthError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClient, claims.Client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{"path": r.URL.Path}).Warn("auth: credencial recusada")

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
}
