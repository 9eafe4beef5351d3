package forecasting

import (
	"fmt"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/aggregating"
)

const (
	// timeFactorStep é o crescimento aplicado às variáveis exógenas por
	// mês projetado: o mês i usa o fator 1 + 0.05*i
	timeFactorStep = 0.05

	// forecastStrideDays é o passo entre meses projetados. A série
	// histórica sintética usa o mesmo passo de 30 dias.
	forecastStrideDays = 30
)

// Engine treina um modelo de regressão sobre a série mensal agregada e
// projeta meses futuros sob os modificadores de cenário informados
type Engine struct {
	modelType string
	model     Regressor
	trained   bool
}

// NewEngine cria o engine para o tipo de modelo informado. Tipos
// desconhecidos retornam ErrUnsupportedModel.
func NewEngine(modelType string) (*Engine, error) {
	model, err := NewRegressor(modelType)
	if err != nil {
		return nil, err
	}

	return &Engine{
		modelType: modelType,
		model:     model,
	}, nil
}

// NewEngineWithModel cria o engine com um regressor já construído
func NewEngineWithModel(modelType string, model Regressor) *Engine {
	return &Engine{
		modelType: modelType,
		model:     model,
	}
}

// ModelType retorna o tipo do modelo configurado no engine
func (e *Engine) ModelType() string {
	return e.modelType
}

// Trained indica se o engine já passou por um treino com sucesso
func (e *Engine) Trained() bool {
	return e.trained
}

// Train agrega os registros em série mensal e treina o modelo sobre as
// variáveis exógenas. Um conjunto vazio retorna erro e preserva o
// estado de treino anterior.
func (e *Engine) Train(records []domain.SalesRecord) error {
	series, err := aggregating.Aggregate(records)
	if err != nil {
		return err
	}

	features := make([][]float64, len(series))
	targets := make([]float64, len(series))
	for i, month := range series {
		features[i] = month.Exogenous()
		targets[i] = month.Sales
	}

	if err := e.model.Fit(features, targets); err != nil {
		return fmt.Errorf("erro ao treinar o modelo %s: %w", e.modelType, err)
	}

	e.trained = true
	return nil
}

// Forecast retorna a série combinada: os meses históricos agregados
// seguidos de monthsAhead meses projetados. Com monthsAhead igual a
// zero retorna apenas a série histórica.
func (e *Engine) Forecast(records []domain.SalesRecord, modifiers domain.ScenarioModifiers, monthsAhead int) (domain.Series, error) {
	if !e.trained {
		return nil, ErrNotTrained
	}
	if monthsAhead < 0 {
		return nil, ErrInvalidHorizon
	}

	historical, err := aggregating.Aggregate(records)
	if err != nil {
		return nil, err
	}

	series := make(domain.Series, len(historical), len(historical)+monthsAhead)
	copy(series, historical)

	anchor := historical[len(historical)-1]
	for i := 1; i <= monthsAhead; i++ {
		timeFactor := 1 + timeFactorStep*float64(i)
		projected := []float64{
			anchor.Unemployment * modifiers.Unemployment * timeFactor,
			anchor.GasPrice * modifiers.GasPrice * timeFactor,
			anchor.CPIAll * modifiers.CPI * timeFactor,
			anchor.SearchVolume * modifiers.SearchVolume * timeFactor,
		}

		predictions, err := e.model.Predict([][]float64{projected})
		if err != nil {
			return nil, fmt.Errorf("erro ao prever o mês %d: %w", i, err)
		}

		date := anchor.Date.AddDate(0, 0, forecastStrideDays*i)
		sales := predictions[0] * seasonalFactor(int(date.Month()))

		series = append(series, domain.MonthlySales{
			Date:         date,
			Year:         date.Year(),
			Month:        int(date.Month()),
			Sales:        sales,
			Unemployment: projected[0],
			GasPrice:     projected[1],
			CPIAll:       projected[2],
			SearchVolume: projected[3],
			IsForecast:   true,
		})
	}

	return series, nil
}

// seasonalFactor replica a sazonalidade do dataset sintético: alta na
// primavera e no fim do ano, baixa no inverno
func seasonalFactor(month int) float64 {
	switch {
	case month >= 3 && month <= 5, month == 11, month == 12:
		return 1.2
	case month <= 2:
		return 0.8
	default:
		return 1.0
	}
}
