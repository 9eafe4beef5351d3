package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/authenticating"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

type CreateSessionRequest struct {
	AccessKey string `json:"access_key"`
}

type CreateSessionResponse struct {
	Token   string                  `json:"token"`
	Session *domain.SessionSnapshot `json:"session"`
}

// CreateSession valida a chave de acesso e abre uma sessão nova do dashboard
func CreateSession(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSession")

		var req CreateSessionRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, snapshot, err := service.CreateSession(req.AccessKey)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, CreateSessionResponse{
			Token:   token,
			Session: snapshot,
		})
	}
}

// handleAuthError trata erros de autenticação e retorna a resposta apropriada
func handleAuthError(w http.ResponseWriter, err error) {
	// Tentar fazer cast para AuthError para obter mais detalhes
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details map[string]any
		if authErr.SessionID != "" {
			details = map[string]any{
				"session_id": authErr.SessionID,
			}
		}

		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Chave de acesso inválida", nil)

	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "A chave de acesso é obrigatória", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao abrir a sessão", nil)
	}
}
