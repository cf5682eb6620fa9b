package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-forge-api/internal/config"
	"github.com/vfg2006/analytics-forge-api/internal/usecases/authenticating"
)

func TestRequireCredentials(t *testing.T) {
	hash, err := authenticating.HashAPIKey("chave")
	require.NoError(t, err)

	enabled := authenticating.NewService(&config.Config{Auth: config.Auth{Enabled: true, Secret: "s3gredo", APIKeyHash: hash}})
	disabled := authenticating.NewService(&config.Config{})

	token, err := enabled.GenerateToken("web", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		service    authenticating.Authenticator
		headers    map[string]string
		wantStatus int
		wantClient string
	}{
		{name: "autenticação desabilitada", service: disabled, wantStatus: http.StatusOK},
		{name: "sem credenciais", service: enabled, wantStatus: http.StatusUnauthorized},
		{name: "token válido", service: enabled, headers: map[string]string{"Authorization": "Bearer " + token}, wantStatus: http.StatusOK, wantClient: "web"},
		{name: "sem prefixo Bearer", service: enabled, headers: map[string]string{"Authorization": token}, wantStatus: http.StatusUnauthorized},
		{name: "token inválido", service: enabled, headers: map[string]string{"Authorization": "Bearer abc"}, wantStatus: http.StatusUnauthorized},
		{name: "chave de API válida", service: enabled, headers: map[string]string{APIKeyHeader: "chave"}, wantStatus: http.StatusOK, wantClient: "api-key"},
		{name: "chave de API inválida", service: enabled, headers: map[string]string{APIKeyHeader: "errada"}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var client any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				client = r.Context().Value(ContextKeyClient)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			RequireCredentials(tt.service)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantClient != "" {
				assert.Equal(t, tt.wantClient, client)
			}
		})
	}
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantHeader string
		wantStatus int
	}{
		{name: "origem liberada", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodGet, wantHeader: "http://localhost:3000", wantStatus: http.StatusTeapot},
		{name: "origem bloqueada", origins: []string{"http://localhost:3000"}, origin: "http://evil.test", method: http.MethodGet, wantStatus: http.StatusTeapot},
		{name: "curinga", origins: []string{"*"}, origin: "http://qualquer.test", method: http.MethodGet, wantHeader: "http://qualquer.test", wantStatus: http.StatusTeapot},
		{name: "preflight", origins: []string{"*"}, origin: "http://qualquer.test", method: http.MethodOptions, wantHeader: "http://qualquer.test", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/analytics/dashboards", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.origins)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
