package charting

import (
	"fmt"
	"sort"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/utils"
)

// summaryTableLimit limita a tabela resumo aos maiores grupos
const summaryTableLimit = 10

// summaryGroups são as dimensões aceitas pela tabela resumo
var summaryGroups = map[string]bool{
	"vehicle_type": true,
	"region":       true,
	"state":        true,
	"make":         true,
	"model_year":   true,
}

// ForecastTable retorna as linhas previstas da série no formato da
// tabela de previsão, com as datas formatadas e as vendas arredondadas
func ForecastTable(series domain.Series) []domain.ForecastTableRow {
	forecast := series.Forecast()

	rows := make([]domain.ForecastTableRow, 0, len(forecast))
	for _, month := range forecast {
		rows = append(rows, domain.ForecastTableRow{
			Date:         utils.FormatDate(month.Date),
			Sales:        utils.RoundWithTwoDecimalPlace(month.Sales),
			Unemployment: month.Unemployment,
			GasPrice:     month.GasPrice,
			CPIAll:       month.CPIAll,
			SearchVolume: month.SearchVolume,
		})
	}

	return rows
}

// SummaryTable agrega as vendas pela dimensão informada e retorna os
// maiores grupos em ordem decrescente de vendas
func SummaryTable(records []domain.SalesRecord, groupBy string) ([]domain.SummaryRow, error) {
	if !summaryGroups[groupBy] {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, groupBy)
	}

	accessor := dimensionAccessors[groupBy]
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		key := accessor(r)
		totals[key] += r.Sales
		counts[key]++
	}

	rows := make([]domain.SummaryRow, 0, len(totals))
	for group, total := range totals {
		rows = append(rows, domain.SummaryRow{
			Group:      group,
			TotalSales: utils.RoundWithTwoDecimalPlace(total),
			Count:      counts[group],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSales != rows[j].TotalSales {
			return rows[i].TotalSales > rows[j].TotalSales
		}
		return rows[i].Group < rows[j].Group
	})

	if len(rows) > summaryTableLimit {
		rows = rows[:summaryTableLimit]
	}

	return rows, nil
}
