package handler

import (
	"net/http"

	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/charting"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

// defaultSummaryGroup é a dimensão padrão da tabela resumo
const defaultSummaryGroup = "region"

// GetForecastTable retorna as linhas previstas da sessão no formato tabular
func GetForecastTable(service session.Service) http.HandlerFunc {
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

		writeJSON(w, charting.ForecastTable(series))
	}
}

// GetSummaryTable retorna os totais de venda agrupados pela dimensão
// da query string
func GetSummaryTable(service session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		groupBy := r.URL.Query().Get("group_by")
		if groupBy == "" {
			groupBy = defaultSummaryGroup
		}

		records, err := service.FilteredRecords(sessionID)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		rows, err := charting.SummaryTable(records, groupBy)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		writeJSON(w, rows)
	}
}
