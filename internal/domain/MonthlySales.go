package domain

import "time"

// MonthlySales representa um mês agregado da série de vendas. Linhas
// históricas carregam IsForecast=false e linhas projetadas IsForecast=true.
type MonthlySales struct {
	Date         time.Time `json:"date"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Sales        float64   `json:"sales"`
	Unemployment float64   `json:"unemployment"`
	GasPrice     float64   `json:"gas_price"`
	CPIAll       float64   `json:"cpi_all"`
	SearchVolume float64   `json:"search_volume"`
	IsForecast   bool      `json:"is_forecast"`
}

// Exogenous retorna o vetor exógeno na ordem fixa usada pelos modelos:
// unemployment, gas_price, cpi_all, search_volume
func (m MonthlySales) Exogenous() []float64 {
	return []float64{m.Unemployment, m.GasPrice, m.CPIAll, m.SearchVolume}
}

// Series é a série combinada: meses históricos seguidos dos meses previstos.
// Uma série vazia representa "sem dados" para os gráficos e tabelas.
type Series []MonthlySales

// IsEmpty indica se a série não possui nenhuma linha
func (s Series) IsEmpty() bool {
	return len(s) == 0
}

// Historical retorna apenas as linhas históricas da série
func (s Series) Historical() Series {
	out := make(Series, 0, len(s))
	for _, m := range s {
		if !m.IsForecast {
			out = append(out, m)
		}
	}
	return out
}

// Forecast retorna apenas as linhas previstas da série
func (s Series) Forecast() Series {
	out := make(Series, 0, len(s))
	for _, m := range s {
		if m.IsForecast {
			out = append(out, m)
		}
	}
	return out
}
