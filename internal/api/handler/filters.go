package handler

import (
	"net/http"

	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

// GetFilterOptions retorna os valores distintos de cada dimensão
// filtrável do dataset, para popular os controles do dashboard
func GetFilterOptions(service session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessionIDFromRequest(r); !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		writeJSON(w, service.Options())
	}
}
