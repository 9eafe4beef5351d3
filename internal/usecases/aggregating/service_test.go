package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
)

func TestAggregate(t *testing.T) {
	// Períodos de 30 dias do dataset: dois deles caem no mesmo mês civil
	jan1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	jan31 := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	mar2 := time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		records  []domain.SalesRecord
		validate func(t *testing.T, series domain.Series)
	}{
		{
			name: "Deve somar vendas e tirar a média das variáveis exógenas por período",
			records: []domain.SalesRecord{
				{Date: jan1, Sales: 100, Unemployment: 4.0, GasPrice: 3.0, CPIAll: 300.0, SearchVolume: 60.0},
				{Date: jan1, Sales: 250, Unemployment: 6.0, GasPrice: 5.0, CPIAll: 310.0, SearchVolume: 80.0},
			},
			validate: func(t *testing.T, series domain.Series) {
				assert.Len(t, series, 1)
				assert.Equal(t, 350.0, series[0].Sales)
				assert.Equal(t, 5.0, series[0].Unemployment)
				assert.Equal(t, 4.0, series[0].GasPrice)
				assert.Equal(t, 305.0, series[0].CPIAll)
				assert.Equal(t, 70.0, series[0].SearchVolume)
			},
		},
		{
			name: "Deve ordenar os períodos por data crescente",
			records: []domain.SalesRecord{
				{Date: mar2, Sales: 30},
				{Date: jan1, Sales: 10},
				{Date: jan31, Sales: 20},
			},
			validate: func(t *testing.T, series domain.Series) {
				assert.Len(t, series, 3)
				assert.Equal(t, jan1, series[0].Date)
				assert.Equal(t, jan31, series[1].Date)
				assert.Equal(t, mar2, series[2].Date)
			},
		},
		{
			name: "Deve preencher ano e mês a partir da data do período",
			records: []domain.SalesRecord{
				{Date: mar2, Sales: 50},
			},
			validate: func(t *testing.T, series domain.Series) {
				assert.Len(t, series, 1)
				assert.Equal(t, 2023, series[0].Year)
				assert.Equal(t, 3, series[0].Month)
			},
		},
		{
			name: "Deve marcar todas as linhas como históricas",
			records: []domain.SalesRecord{
				{Date: jan1, Sales: 10},
				{Date: jan31, Sales: 20},
			},
			validate: func(t *testing.T, series domain.Series) {
				for _, month := range series {
					assert.False(t, month.IsForecast)
				}
			},
		},
		{
			name: "Registro único por período deve manter os próprios valores",
			records: []domain.SalesRecord{
				{Date: jan1, Sales: 42, Unemployment: 5.5, GasPrice: 3.2, CPIAll: 298.0, SearchVolume: 71.0},
			},
			validate: func(t *testing.T, series domain.Series) {
				assert.Len(t, series, 1)
				assert.Equal(t, 42.0, series[0].Sales)
				assert.Equal(t, 5.5, series[0].Unemployment)
				assert.Equal(t, 3.2, series[0].GasPrice)
				assert.Equal(t, 298.0, series[0].CPIAll)
				assert.Equal(t, 71.0, series[0].SearchVolume)
			},
		},
		{
			name: "Períodos distintos no mesmo mês civil não devem ser mesclados",
			records: []domain.SalesRecord{
				{Date: jan1, Sales: 10},
				{Date: jan31, Sales: 20},
			},
			validate: func(t *testing.T, series domain.Series) {
				assert.Len(t, series, 2)
				assert.Equal(t, 10.0, series[0].Sales)
				assert.Equal(t, 20.0, series[1].Sales)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := Aggregate(tt.records)

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, series)
			}
		})
	}
}

func TestAggregate_EntradaVazia(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.SalesRecord
	}{
		{
			name:    "Slice nulo deve retornar ErrEmptyInput",
			records: nil,
		},
		{
			name:    "Slice vazio deve retornar ErrEmptyInput",
			records: []domain.SalesRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := Aggregate(tt.records)

			assert.ErrorIs(t, err, ErrEmptyInput)
			assert.Nil(t, series)
		})
	}
}

func TestAggregate_Reagregacao(t *testing.T) {
	// Agregar uma série já agregada (um registro por período) deve
	// devolver exatamente os mesmos valores
	jan1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	jan31 := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	records := []domain.SalesRecord{
		{Date: jan1, Sales: 120, Unemployment: 4.2, GasPrice: 3.1, CPIAll: 301.0, SearchVolume: 55.0},
		{Date: jan1, Sales: 80, Unemployment: 4.8, GasPrice: 3.3, CPIAll: 303.0, SearchVolume: 65.0},
		{Date: jan31, Sales: 90, Unemployment: 5.0, GasPrice: 3.4, CPIAll: 305.0, SearchVolume: 70.0},
	}

	first, err := Aggregate(records)
	assert.NoError(t, err)

	reduced := make([]domain.SalesRecord, 0, len(first))
	for _, month := range first {
		reduced = append(reduced, domain.SalesRecord{
			Date:         month.Date,
			Sales:        month.Sales,
			Unemployment: month.Unemployment,
			GasPrice:     month.GasPrice,
			CPIAll:       month.CPIAll,
			SearchVolume: month.SearchVolume,
		})
	}

	second, err := Aggregate(reduced)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
