package domain

// ForecastTableRow é uma linha da tabela de previsão exibida no dashboard
type ForecastTableRow struct {
	Date         string  `json:"date"` // Formato yyyy-mm-dd
	Sales        float64 `json:"sales"`
	Unemployment float64 `json:"unemployment"`
	GasPrice     float64 `json:"gas_price"`
	CPIAll       float64 `json:"cpi_all"`
	SearchVolume float64 `json:"search_volume"`
}

// SummaryRow é uma linha da tabela resumo agrupada por dimensão
type SummaryRow struct {
	Group      string  `json:"group"`
	TotalSales float64 `json:"total_sales"`
	Count      int     `json:"count"`
}
