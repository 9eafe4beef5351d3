package forecasting

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/aggregating"
)

// RandomForest é uma floresta de árvores de regressão treinadas sobre
// amostras bootstrap do conjunto de treino. A previsão é a média das
// árvores. Com a seed fixa o treino é determinístico entre execuções.
type RandomForest struct {
	nTrees int
	seed   int64
	trees  []*regressionTree
}

func NewRandomForest(nTrees int, seed int64) *RandomForest {
	return &RandomForest{
		nTrees: nTrees,
		seed:   seed,
	}
}

// Fit treina as árvores da floresta, cada uma sobre uma amostra
// bootstrap do mesmo tamanho do conjunto original
func (m *RandomForest) Fit(features [][]float64, targets []float64) error {
	if len(features) == 0 || len(targets) == 0 {
		return aggregating.ErrEmptyInput
	}
	if len(features) != len(targets) {
		return fmt.Errorf("dimensões incompatíveis: %d linhas de features para %d alvos", len(features), len(targets))
	}

	r := rand.New(rand.NewSource(m.seed))
	n := len(targets)

	trees := make([]*regressionTree, 0, m.nTrees)
	for t := 0; t < m.nTrees; t++ {
		sampleX := make([][]float64, n)
		sampleY := make([]float64, n)
		for i := 0; i < n; i++ {
			j := r.Intn(n)
			sampleX[i] = features[j]
			sampleY[i] = targets[j]
		}

		trees = append(trees, growTree(sampleX, sampleY))
	}

	m.trees = trees
	return nil
}

// Predict retorna a média das previsões das árvores para cada linha
func (m *RandomForest) Predict(features [][]float64) ([]float64, error) {
	if len(m.trees) == 0 {
		return nil, ErrNotTrained
	}

	out := make([]float64, len(features))
	for i, row := range features {
		sum := 0.0
		for _, tree := range m.trees {
			sum += tree.predict(row)
		}
		out[i] = sum / float64(len(m.trees))
	}

	return out, nil
}

// regressionTree é uma árvore CART de regressão crescida até a pureza,
// sem poda. Cada split minimiza a soma dos erros quadráticos dos lados.
type regressionTree struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *regressionTree
	right     *regressionTree
}

func (t *regressionTree) predict(row []float64) float64 {
	if t.leaf {
		return t.value
	}
	if row[t.feature] <= t.threshold {
		return t.left.predict(row)
	}
	return t.right.predict(row)
}

func growTree(features [][]float64, targets []float64) *regressionTree {
	if len(targets) < 2 || allEqual(targets) {
		return &regressionTree{leaf: true, value: stat.Mean(targets, nil)}
	}

	feature, threshold, ok := bestSplit(features, targets)
	if !ok {
		return &regressionTree{leaf: true, value: stat.Mean(targets, nil)}
	}

	var leftX, rightX [][]float64
	var leftY, rightY []float64
	for i, row := range features {
		if row[feature] <= threshold {
			leftX = append(leftX, row)
			leftY = append(leftY, targets[i])
		} else {
			rightX = append(rightX, row)
			rightY = append(rightY, targets[i])
		}
	}

	return &regressionTree{
		feature:   feature,
		threshold: threshold,
		left:      growTree(leftX, leftY),
		right:     growTree(rightX, rightY),
	}
}

// bestSplit avalia todas as features e todos os pontos de corte entre
// valores consecutivos distintos. Retorna ok=false quando nenhuma
// feature separa o conjunto.
func bestSplit(features [][]float64, targets []float64) (int, float64, bool) {
	bestSSE := math.Inf(1)
	bestFeature := -1
	var bestThreshold float64

	nFeatures := len(features[0])
	values := make([]float64, len(features))
	sorted := make([]float64, len(features))

	for j := 0; j < nFeatures; j++ {
		for i, row := range features {
			values[i] = row[j]
		}
		copy(sorted, values)
		sort.Float64s(sorted)

		for k := 0; k+1 < len(sorted); k++ {
			if sorted[k] == sorted[k+1] {
				continue
			}
			threshold := (sorted[k] + sorted[k+1]) / 2

			var leftY, rightY []float64
			for i := range targets {
				if values[i] <= threshold {
					leftY = append(leftY, targets[i])
				} else {
					rightY = append(rightY, targets[i])
				}
			}

			sse := sumSquaredError(leftY) + sumSquaredError(rightY)
			if sse < bestSSE {
				bestSSE = sse
				bestFeature = j
				bestThreshold = threshold
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

func sumSquaredError(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := stat.Mean(values, nil)
	var sse float64
	for _, v := range values {
		d := v - mean
		sse += d * d
	}

	return sse
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
