package handler

import (
	"net/http"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/charting"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

// Dimensões padrão do heatmap quando a query não as informa
const (
	defaultHeatmapX = "month"
	defaultHeatmapY = "vehicle_type"
)

// seriesChart resolve a série da sessão e monta a figure com o builder informado
func seriesChart(service session.Service, build func(domain.Series) domain.Figure) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		series, err := service.Series(sessionID)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		writeJSON(w, build(series))
	}
}

// recordsChart resolve os registros filtrados da sessão e monta a
// figure com o builder informado
func recordsChart(service session.Service, build func([]domain.SalesRecord) domain.Figure) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		records, err := service.FilteredRecords(sessionID)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		writeJSON(w, build(records))
	}
}

// GetSalesTrendChart retorna o gráfico de vendas históricas e previstas
func GetSalesTrendChart(service session.Service) http.HandlerFunc {
	return seriesChart(service, charting.SalesTrend)
}

// GetVehicleTypeChart retorna a pizza de vendas por tipo de veículo
func GetVehicleTypeChart(service session.Service) http.HandlerFunc {
	return recordsChart(service, charting.VehicleTypePie)
}

// GetRegionChart retorna as barras de vendas por região
func GetRegionChart(service session.Service) http.HandlerFunc {
	return recordsChart(service, charting.RegionBar)
}

// GetExogenousChart retorna o painel com as trajetórias das variáveis exógenas
func GetExogenousChart(service session.Service) http.HandlerFunc {
	return seriesChart(service, charting.ExogenousTrends)
}

// GetTopModelsChart retorna as barras dos dez modelos mais vendidos
func GetTopModelsChart(service session.Service) http.HandlerFunc {
	return recordsChart(service, charting.TopModels)
}

// GetStateMapChart retorna o mapa coroplético de vendas por estado
func GetStateMapChart(service session.Service) http.HandlerFunc {
	return recordsChart(service, charting.StateMap)
}

// GetHeatmapChart retorna o mapa de calor de vendas para o par de
// dimensões da query string
func GetHeatmapChart(service session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		xDim := r.URL.Query().Get("x")
		if xDim == "" {
			xDim = defaultHeatmapX
		}
		yDim := r.URL.Query().Get("y")
		if yDim == "" {
			yDim = defaultHeatmapY
		}

		records, err := service.FilteredRecords(sessionID)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		figure, err := charting.Heatmap(records, xDim, yDim)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		writeJSON(w, figure)
	}
}
