package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

func TestGetForecastTable(t *testing.T) {
	t.Run("Deve retornar uma linha por mês previsto", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		GetForecastTable(service).ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/tables/forecast", created.ID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []domain.ForecastTableRow
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
		assert.Len(t, rows, created.ForecastMonths)
		for _, row := range rows {
			assert.NotEmpty(t, row.Date)
		}
	})

	t.Run("Deve recusar requisição sem claims de sessão", func(t *testing.T) {
		_, service := newHandlerFixture(t)

		rec := httptest.NewRecorder()
		GetForecastTable(service).ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/tables/forecast", "", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
	})
}

func TestGetSummaryTable(t *testing.T) {
	t.Run("Deve agrupar por região quando a query está vazia", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		GetSummaryTable(service).ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/tables/summary", created.ID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []domain.SummaryRow
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
		assert.Len(t, rows, 4)
	})

	t.Run("Deve agrupar pela dimensão da query string", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, "/v1/tables/summary?group_by=vehicle_type", created.ID, nil)

		GetSummaryTable(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []domain.SummaryRow
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
		assert.Len(t, rows, 4)
		for _, row := range rows {
			assert.Greater(t, row.TotalSales, 0.0)
			assert.Equal(t, 896, row.Count)
		}
	})

	t.Run("Deve limitar a tabela às dez maiores linhas", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, "/v1/tables/summary?group_by=state", created.ID, nil)

		GetSummaryTable(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []domain.SummaryRow
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
		assert.Len(t, rows, 10)
	})

	t.Run("Deve recusar dimensão de agrupamento desconhecida", func(t *testing.T) {
		_, service := newHandlerFixture(t)
		created, err := service.Create()
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, "/v1/tables/summary?group_by=cor", created.ID, nil)

		GetSummaryTable(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidDimension, decodeAPIError(t, rec).Code)
	})
}
