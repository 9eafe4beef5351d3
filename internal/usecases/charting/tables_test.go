package charting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
)

func TestForecastTable(t *testing.T) {
	t.Run("Série vazia deve retornar tabela vazia", func(t *testing.T) {
		assert.Empty(t, ForecastTable(nil))
	})

	t.Run("Série só histórica deve retornar tabela vazia", func(t *testing.T) {
		series := domain.Series{
			{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Sales: 100},
		}

		assert.Empty(t, ForecastTable(series))
	})

	t.Run("Deve listar apenas os meses previstos com vendas arredondadas", func(t *testing.T) {
		series := domain.Series{
			{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Sales: 100},
			{
				Date:         time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
				Sales:        1234.56789,
				Unemployment: 5.25,
				GasPrice:     3.675,
				CPIAll:       320.25,
				SearchVolume: 57.75,
				IsForecast:   true,
			},
			{
				Date:       time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC),
				Sales:      987.654,
				IsForecast: true,
			},
		}

		rows := ForecastTable(series)

		assert.Len(t, rows, 2)
		assert.Equal(t, "2023-01-31", rows[0].Date)
		assert.Equal(t, 1234.57, rows[0].Sales)
		assert.Equal(t, 5.25, rows[0].Unemployment)
		assert.Equal(t, 3.675, rows[0].GasPrice)
		assert.Equal(t, 320.25, rows[0].CPIAll)
		assert.Equal(t, 57.75, rows[0].SearchVolume)

		assert.Equal(t, "2023-03-02", rows[1].Date)
		assert.Equal(t, 987.65, rows[1].Sales)
	})
}

func TestSummaryTable(t *testing.T) {
	records := []domain.SalesRecord{
		{Region: "West", Sales: 100},
		{Region: "West", Sales: 50},
		{Region: "South", Sales: 120},
		{Region: "North", Sales: 120},
		{Region: "East", Sales: 30},
	}

	t.Run("Dimensão desconhecida deve retornar ErrUnknownDimension", func(t *testing.T) {
		rows, err := SummaryTable(records, "cor")

		assert.ErrorIs(t, err, ErrUnknownDimension)
		assert.Nil(t, rows)
	})

	t.Run("Dimensão fora da lista de resumo deve ser rejeitada", func(t *testing.T) {
		// model existe como dimensão de heatmap mas não na tabela resumo
		_, err := SummaryTable(records, "model")

		assert.ErrorIs(t, err, ErrUnknownDimension)
	})

	t.Run("Deve somar e contar por grupo em ordem decrescente de vendas", func(t *testing.T) {
		rows, err := SummaryTable(records, "region")

		assert.NoError(t, err)
		assert.Len(t, rows, 4)

		assert.Equal(t, domain.SummaryRow{Group: "West", TotalSales: 150, Count: 2}, rows[0])
		// Empate em 120: North antes de South pelo rótulo
		assert.Equal(t, domain.SummaryRow{Group: "North", TotalSales: 120, Count: 1}, rows[1])
		assert.Equal(t, domain.SummaryRow{Group: "South", TotalSales: 120, Count: 1}, rows[2])
		assert.Equal(t, domain.SummaryRow{Group: "East", TotalSales: 30, Count: 1}, rows[3])
	})

	t.Run("Tabela deve ser limitada aos dez maiores grupos", func(t *testing.T) {
		var many []domain.SalesRecord
		for i := 0; i < 15; i++ {
			many = append(many, domain.SalesRecord{
				State: fmt.Sprintf("S%02d", i),
				Sales: float64(100 * (i + 1)),
			})
		}

		rows, err := SummaryTable(many, "state")

		assert.NoError(t, err)
		assert.Len(t, rows, 10)
		assert.Equal(t, "S14", rows[0].Group)
		assert.Equal(t, "S05", rows[9].Group)
	})

	t.Run("Ano do modelo deve agrupar pelo valor numérico como rótulo", func(t *testing.T) {
		records := []domain.SalesRecord{
			{ModelYear: 2023, Sales: 10},
			{ModelYear: 2020, Sales: 90},
		}

		rows, err := SummaryTable(records, "model_year")

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "2020", rows[0].Group)
		assert.Equal(t, "2023", rows[1].Group)
	})

	t.Run("Sem registros deve retornar tabela vazia sem erro", func(t *testing.T) {
		rows, err := SummaryTable(nil, "region")

		assert.NoError(t, err)
		assert.Empty(t, rows)
	})
}
