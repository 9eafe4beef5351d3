package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

// UpdateModifiersRequest aceita atualização parcial: campos ausentes
// preservam o valor atual da sessão
type UpdateModifiersRequest struct {
	Unemployment   *float64 `json:"unemployment_modifier"`
	GasPrice       *float64 `json:"gas_price_modifier"`
	CPI            *float64 `json:"cpi_modifier"`
	SearchVolume   *float64 `json:"search_modifier"`
	ForecastMonths *int     `json:"forecast_months"`
}

type UpdateModelRequest struct {
	ModelType string `json:"model_type"`
}

// UpdateScenarioFilters substitui os filtros da sessão e refaz treino e previsão
func UpdateScenarioFilters(service session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateScenarioFilters")

		sessionID, ok := sessionIDFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		var filters domain.RecordFilter
		if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		snapshot, err := service.UpdateFilters(sessionID, filters)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		writeJSON(w, snapshot)
	}
}

// UpdateScenarioModifiers aplica os modificadores e o horizonte de
// previsão da sessão e refaz a previsão
func UpdateScenarioModifiers(service session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateScenarioModifiers")

		sessionID, ok := sessionIDFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		var req UpdateModifiersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		current, err := service.Snapshot(sessionID)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		modifiers := current.Modifiers
		months := current.ForecastMonths

		if req.Unemployment != nil {
			modifiers.Unemployment = *req.Unemployment
		}
		if req.GasPrice != nil {
			modifiers.GasPrice = *req.GasPrice
		}
		if req.CPI != nil {
			modifiers.CPI = *req.CPI
		}
		if req.SearchVolume != nil {
			modifiers.SearchVolume = *req.SearchVolume
		}
		if req.ForecastMonths != nil {
			months = *req.ForecastMonths
		}

		snapshot, err := service.UpdateModifiers(sessionID, modifiers, months)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		writeJSON(w, snapshot)
	}
}

// UpdateScenarioModel troca o modelo de regressão da sessão
func UpdateScenarioModel(service session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateScenarioModel")

		sessionID, ok := sessionIDFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		var req UpdateModelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.ModelType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O tipo de modelo é obrigatório", nil)
			return
		}

		snapshot, err := service.UpdateModel(sessionID, req.ModelType)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		writeJSON(w, snapshot)
	}
}

// GetForecast retorna a série combinada da sessão: os meses históricos
// agregados seguidos dos meses previstos
func GetForecast(service session.Service) http.HandlerFunc {
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

		writeJSON(w, series)
	}
}
