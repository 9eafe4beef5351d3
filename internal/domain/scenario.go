package domain

// Tipos de modelo de regressão suportados pelo motor de cenários
const (
	ModelTypeLinear = "linear"
	ModelTypeForest = "forest"
)

// ScenarioModifiers são os multiplicadores aplicados às variáveis exógenas
// na projeção de cenários. O valor neutro de cada modificador é 1.0.
type ScenarioModifiers struct {
	Unemployment float64 `json:"unemployment_modifier"`
	GasPrice     float64 `json:"gas_price_modifier"`
	CPI          float64 `json:"cpi_modifier"`
	SearchVolume float64 `json:"search_modifier"`
}

// NeutralModifiers retorna modificadores que não alteram o cenário base
func NeutralModifiers() ScenarioModifiers {
	return ScenarioModifiers{
		Unemployment: 1.0,
		GasPrice:     1.0,
		CPI:          1.0,
		SearchVolume: 1.0,
	}
}
