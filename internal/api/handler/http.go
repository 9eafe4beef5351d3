// Package handler implementa os handlers HTTP da API do dashboard.
package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/charting"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/forecasting"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sessionIDFromRequest extrai o identificador de sessão das claims
// injetadas pelo middleware de autenticação
func sessionIDFromRequest(r *http.Request) (string, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
	if !ok || claims.SessionID == "" {
		return "", false
	}
	return claims.SessionID, true
}

// writeJSON envia a resposta serializada com o content type correto
func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}

// handleSessionError converte os erros das operações de sessão para o
// envelope de erro da API
func handleSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada ou expirada", nil)

	case errors.Is(err, forecasting.ErrUnsupportedModel):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedModel, "Tipo de modelo de regressão não suportado", nil)

	case errors.Is(err, forecasting.ErrInvalidHorizon):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Horizonte de previsão fora da faixa aceita", nil)

	case errors.Is(err, charting.ErrUnknownDimension):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDimension, "Dimensão de agrupamento inválida", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
