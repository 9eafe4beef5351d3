package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kipmadden/car-sales-dashboard-api/infrastructure/dataset"
	"github.com/kipmadden/car-sales-dashboard-api/internal/config"
	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/middleware"
)

// newHandlerFixture monta o serviço de sessão sobre um dataset pequeno
// determinístico para os testes dos handlers
func newHandlerFixture(t *testing.T) (*config.Config, session.Service) {
	t.Helper()

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:        "segredo-de-teste",
			TokenDuration: time.Hour,
		},
		Scenario: config.Scenario{
			DefaultModelType:      domain.ModelTypeLinear,
			DefaultForecastMonths: 3,
			MaxForecastMonths:     24,
		},
	}

	store := dataset.NewStore(dataset.Generate(42, 2))
	return cfg, session.NewService(cfg, store, session.NewManager())
}

// authedRequest cria a requisição já com as claims da sessão no contexto,
// como o middleware de autenticação faria
func authedRequest(method, target, sessionID string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if sessionID == "" {
		return req
	}

	claims := &domain.Claims{SessionID: sessionID}
	ctx := context.WithValue(req.Context(), middleware.ContextKeySession, claims)
	return req.WithContext(ctx)
}

func jsonBody(t *testing.T, payload string) io.Reader {
	t.Helper()
	return bytes.NewBufferString(payload)
}

// decodeAPIError decodifica o envelope de erro da resposta
func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}
