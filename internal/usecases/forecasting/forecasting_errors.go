package forecasting

import "errors"

// Erros do motor de cenários e dos modelos de regressão
var (
	// ErrUnsupportedModel indica um tipo de modelo desconhecido na
	// criação do motor
	ErrUnsupportedModel = errors.New("tipo de modelo de regressão não suportado")

	// ErrNotTrained indica previsão antes de um treino bem sucedido
	ErrNotTrained = errors.New("modelo ainda não treinado")

	// ErrInvalidHorizon indica um horizonte de previsão negativo
	ErrInvalidHorizon = errors.New("horizonte de previsão inválido")
)
