// Package forecasting implementa os modelos de regressão e o motor de
// cenários que projeta vendas futuras a partir da série mensal
package forecasting

import (
	"fmt"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
)

// Parâmetros fixos do modelo forest
const (
	forestTrees = 100
	forestSeed  = 42
)

//go:generate mockgen -source=regressor.go -destination=mocks/regressor.go -package=mocks

// Regressor é o contrato comum dos modelos de regressão. As features
// seguem sempre a ordem unemployment, gas_price, cpi_all, search_volume
// e o alvo é a soma mensal de vendas.
type Regressor interface {
	Fit(features [][]float64, targets []float64) error
	Predict(features [][]float64) ([]float64, error)
}

// NewRegressor cria o backend de regressão para o tipo de modelo.
// Tipos desconhecidos falham aqui, antes de qualquer treino.
func NewRegressor(modelType string) (Regressor, error) {
	switch modelType {
	case domain.ModelTypeLinear:
		return NewLinearRegression(), nil
	case domain.ModelTypeForest:
		return NewRandomForest(forestTrees, forestSeed), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, modelType)
}
