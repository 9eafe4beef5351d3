package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

// GetMe retorna o snapshot da sessão autenticada
func GetMe(service session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		snapshot, err := service.Snapshot(sessionID)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		writeJSON(w, snapshot)
	}
}

// DeleteMe encerra a sessão autenticada
func DeleteMe(service session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteMe")

		sessionID, ok := sessionIDFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		if err := service.Delete(sessionID); err != nil {
			handleSessionError(w, err)
			return
		}

		writeJSON(w, map[string]string{
			"message": "Sessão encerrada com sucesso",
		})
	}
}
