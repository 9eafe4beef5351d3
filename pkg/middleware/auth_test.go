package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/kipmadden/car-sales-dashboard-api/infrastructure/dataset"
	"github.com/kipmadden/car-sales-dashboard-api/internal/config"
	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/authenticating"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

const testSecret = "segredo-de-teste"

func newTestAuthenticator(t *testing.T) authenticating.Authenticator {
	t.Helper()

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:        testSecret,
			TokenDuration: time.Hour,
		},
		Scenario: config.Scenario{
			DefaultModelType:      domain.ModelTypeLinear,
			DefaultForecastMonths: 3,
			MaxForecastMonths:     24,
		},
	}

	store := dataset.NewStore(dataset.Generate(42, 2))
	sessions := session.NewService(cfg, store, session.NewManager())

	return authenticating.NewService(cfg, sessions)
}

// signToken assina um token HS256 com as claims de sessão do dashboard
func signToken(t *testing.T, secret, sessionID string, expiresAt time.Time) string {
	t.Helper()

	claims := &domain.Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func decodeMiddlewareError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestAuthMiddleware(t *testing.T) {
	auth := newTestAuthenticator(t)

	var capturedClaims *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedClaims, _ = r.Context().Value(ContextKeySession).(*domain.Claims)
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(auth)(next)

	t.Run("Deve liberar a rota de healthcheck sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Deve liberar a abertura de sessão sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sessions", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Deve exigir o header Authorization", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingToken, decodeMiddlewareError(t, rec).Code)
	})

	t.Run("Deve exigir o esquema Bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Basic abc123")

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingToken, decodeMiddlewareError(t, rec).Code)
	})

	t.Run("Deve recusar token inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer nao-e-um-jwt")

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeMiddlewareError(t, rec).Code)
	})

	t.Run("Deve recusar token assinado com outro segredo", func(t *testing.T) {
		token := signToken(t, "outro-segredo", "abc", time.Now().Add(time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeMiddlewareError(t, rec).Code)
	})

	t.Run("Deve recusar token expirado", func(t *testing.T) {
		token := signToken(t, testSecret, "abc", time.Now().Add(-time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrExpiredToken, decodeMiddlewareError(t, rec).Code)
	})

	t.Run("Deve injetar as claims da sessão no contexto", func(t *testing.T) {
		token, snapshot, err := auth.CreateSession("")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		capturedClaims = nil
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, capturedClaims)
		assert.Equal(t, snapshot.ID, capturedClaims.SessionID)
	})
}
