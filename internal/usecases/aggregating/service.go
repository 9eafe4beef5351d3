// Package aggregating reduz registros individuais de vendas à série
// mensal consumida pelos modelos de previsão
package aggregating

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
)

type group struct {
	date         time.Time
	sales        float64
	unemployment []float64
	gasPrice     []float64
	cpiAll       []float64
	searchVolume []float64
}

// Aggregate agrupa os registros pela data exata do período: soma as
// vendas e tira a média aritmética de cada variável exógena. A série
// resultante sai ordenada por data crescente, toda histórica.
//
// A função é pura: não guarda estado entre chamadas e re-agregar uma
// série de um registro por período devolve os mesmos valores.
func Aggregate(records []domain.SalesRecord) (domain.Series, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	groups := make(map[time.Time]*group)
	for _, rec := range records {
		g, ok := groups[rec.Date]
		if !ok {
			g = &group{date: rec.Date}
			groups[rec.Date] = g
		}

		g.sales += rec.Sales
		g.unemployment = append(g.unemployment, rec.Unemployment)
		g.gasPrice = append(g.gasPrice, rec.GasPrice)
		g.cpiAll = append(g.cpiAll, rec.CPIAll)
		g.searchVolume = append(g.searchVolume, rec.SearchVolume)
	}

	series := make(domain.Series, 0, len(groups))
	for _, g := range groups {
		series = append(series, domain.MonthlySales{
			Date:         g.date,
			Year:         g.date.Year(),
			Month:        int(g.date.Month()),
			Sales:        g.sales,
			Unemployment: stat.Mean(g.unemployment, nil),
			GasPrice:     stat.Mean(g.gasPrice, nil),
			CPIAll:       stat.Mean(g.cpiAll, nil),
			SearchVolume: stat.Mean(g.searchVolume, nil),
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series, nil
}
