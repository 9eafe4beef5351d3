package forecasting

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/aggregating"
)

// LinearRegression ajusta mínimos quadrados ordinários com intercepto.
// A solução via SVD devolve a resposta de norma mínima quando a matriz
// de treino é posto-deficiente, como em séries com exógenas constantes.
type LinearRegression struct {
	coef []float64 // intercepto seguido de um coeficiente por feature
}

func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit resolve os coeficientes de mínimos quadrados para a matriz de
// features e o vetor alvo
func (m *LinearRegression) Fit(features [][]float64, targets []float64) error {
	if len(features) == 0 || len(targets) == 0 {
		return aggregating.ErrEmptyInput
	}
	if len(features) != len(targets) {
		return fmt.Errorf("dimensões incompatíveis: %d linhas de features para %d alvos", len(features), len(targets))
	}

	rows := len(features)
	cols := len(features[0]) + 1

	x := mat.NewDense(rows, cols, nil)
	for i, row := range features {
		if len(row) != cols-1 {
			return fmt.Errorf("linha %d com %d features, esperadas %d", i, len(row), cols-1)
		}

		x.Set(i, 0, 1) // coluna do intercepto
		for j, v := range row {
			x.Set(i, j+1, v)
		}
	}

	y := mat.NewVecDense(rows, targets)

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return errors.New("falha na fatoração SVD da matriz de treino")
	}

	// Posto numérico com a tolerância usual de mínimos quadrados:
	// eps * maior dimensão * maior valor singular
	values := svd.Values(nil)
	tol := 2.22e-16 * float64(max(rows, cols)) * values[0]
	rank := 0
	for _, v := range values {
		if v > tol {
			rank++
		}
	}

	var coef mat.VecDense
	svd.SolveVecTo(&coef, y, rank)

	m.coef = make([]float64, cols)
	for i := range m.coef {
		m.coef[i] = coef.AtVec(i)
	}

	return nil
}

// Predict aplica os coeficientes ajustados a cada linha de features
func (m *LinearRegression) Predict(features [][]float64) ([]float64, error) {
	if m.coef == nil {
		return nil, ErrNotTrained
	}

	out := make([]float64, len(features))
	for i, row := range features {
		if len(row) != len(m.coef)-1 {
			return nil, fmt.Errorf("linha %d com %d features, esperadas %d", i, len(row), len(m.coef)-1)
		}

		v := m.coef[0]
		for j, x := range row {
			v += m.coef[j+1] * x
		}
		out[i] = v
	}

	return out, nil
}
