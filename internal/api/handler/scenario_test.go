package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

func TestUpdateScenarioFilters(t *testing.T) {
	t.Run("Deve aplicar o filtro e refazer a previsão", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/filters", created.ID,
			jsonBody(t, `{"regions": ["West"]}`))

		UpdateScenarioFilters(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var snapshot domain.SessionSnapshot
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
		assert.Equal(t, []string{"West"}, snapshot.Filters.Regions)
		// Uma região concentra um quarto dos registros gerados
		assert.Equal(t, created.RecordCount/4, snapshot.RecordCount)
		assert.Equal(t, 5, snapshot.SeriesLength)
	})

	t.Run("Deve recusar corpo que não é JSON", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/filters", created.ID, jsonBody(t, `{"regions"`))

		UpdateScenarioFilters(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("Deve retornar 404 para sessão desconhecida", func(t *testing.T) {
		_, service := newHandlerFixture(t)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/filters", "inexistente", jsonBody(t, `{}`))

		UpdateScenarioFilters(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrSessionNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("Deve recusar requisição sem claims de sessão", func(t *testing.T) {
		_, service := newHandlerFixture(t)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/filters", "", jsonBody(t, `{}`))

		UpdateScenarioFilters(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
	})
}

func TestUpdateScenarioModifiers(t *testing.T) {
	t.Run("Deve atualizar apenas os campos presentes no corpo", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/modifiers", created.ID,
			jsonBody(t, `{"unemployment_modifier": 2.0}`))

		UpdateScenarioModifiers(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var snapshot domain.SessionSnapshot
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
		assert.Equal(t, 2.0, snapshot.Modifiers.Unemployment)
		// Os demais modificadores e o horizonte permanecem como estavam
		assert.Equal(t, 1.0, snapshot.Modifiers.GasPrice)
		assert.Equal(t, 1.0, snapshot.Modifiers.CPI)
		assert.Equal(t, 1.0, snapshot.Modifiers.SearchVolume)
		assert.Equal(t, 3, snapshot.ForecastMonths)
	})

	t.Run("Deve alterar o horizonte de previsão", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/modifiers", created.ID,
			jsonBody(t, `{"forecast_months": 6}`))

		UpdateScenarioModifiers(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var snapshot domain.SessionSnapshot
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
		assert.Equal(t, 6, snapshot.ForecastMonths)
		assert.Equal(t, 6, snapshot.ForecastRows)
		assert.Equal(t, 8, snapshot.SeriesLength)
	})

	t.Run("Deve recusar horizonte acima do máximo sem alterar a sessão", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/modifiers", created.ID,
			jsonBody(t, `{"forecast_months": 25}`))

		UpdateScenarioModifiers(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)

		snapshot, err := service.Snapshot(created.ID)
		assert.NoError(t, err)
		assert.Equal(t, 3, snapshot.ForecastMonths)
	})

	t.Run("Deve recusar horizonte negativo", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/modifiers", created.ID,
			jsonBody(t, `{"forecast_months": -1}`))

		UpdateScenarioModifiers(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("Deve recusar corpo que não é JSON", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/modifiers", created.ID, jsonBody(t, `nao-e-json`))

		UpdateScenarioModifiers(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})
}

func TestUpdateScenarioModel(t *testing.T) {
	t.Run("Deve trocar o modelo de regressão da sessão", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/model", created.ID,
			jsonBody(t, `{"model_type": "forest"}`))

		UpdateScenarioModel(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var snapshot domain.SessionSnapshot
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
		assert.Equal(t, domain.ModelTypeForest, snapshot.ModelType)
		assert.Equal(t, 3, snapshot.ForecastRows)
	})

	t.Run("Deve exigir o tipo de modelo", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/model", created.ID,
			jsonBody(t, `{"model_type": ""}`))

		UpdateScenarioModel(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("Deve recusar tipo de modelo não suportado", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/model", created.ID,
			jsonBody(t, `{"model_type": "gradient-boost"}`))

		UpdateScenarioModel(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrUnsupportedModel, decodeAPIError(t, rec).Code)

		snapshot, err := service.Snapshot(created.ID)
		assert.NoError(t, err)
		assert.Equal(t, domain.ModelTypeLinear, snapshot.ModelType)
	})

	t.Run("Deve retornar 404 para sessão desconhecida", func(t *testing.T) {
		_, service := newHandlerFixture(t)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/v1/scenario/model", "inexistente",
			jsonBody(t, `{"model_type": "forest"}`))

		UpdateScenarioModel(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrSessionNotFound, decodeAPIError(t, rec).Code)
	})
}

func TestGetForecast(t *testing.T) {
	t.Run("Deve retornar a série histórica seguida da prevista", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		GetForecast(service).ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/scenario/forecast", created.ID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var series domain.Series
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&series))
		assert.Len(t, series, 5)
		assert.Len(t, series.Historical(), 2)
		assert.Len(t, series.Forecast(), 3)
	})

	t.Run("Deve recusar requisição sem claims de sessão", func(t *testing.T) {
		_, service := newHandlerFixture(t)

		rec := httptest.NewRecorder()
		GetForecast(service).ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/scenario/forecast", "", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
	})
}
