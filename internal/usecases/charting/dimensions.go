package charting

import (
	"sort"
	"strconv"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
)

// dimensionAccessors mapeia o nome de cada dimensão de agrupamento para
// o campo correspondente do registro
var dimensionAccessors = map[string]func(domain.SalesRecord) string{
	"month":        func(r domain.SalesRecord) string { return strconv.Itoa(r.Month) },
	"year":         func(r domain.SalesRecord) string { return strconv.Itoa(r.Year) },
	"vehicle_type": func(r domain.SalesRecord) string { return r.VehicleType },
	"region":       func(r domain.SalesRecord) string { return r.Region },
	"state":        func(r domain.SalesRecord) string { return r.State },
	"make":         func(r domain.SalesRecord) string { return r.Make },
	"model":        func(r domain.SalesRecord) string { return r.Model },
	"model_year":   func(r domain.SalesRecord) string { return strconv.Itoa(r.ModelYear) },
}

// Dimensões de valor inteiro, ordenadas numericamente e emitidas como
// números nos eixos
var numericDimensions = map[string]bool{
	"month":      true,
	"year":       true,
	"model_year": true,
}

func sortDimension(dim string, values []string) []string {
	if numericDimensions[dim] {
		sort.Slice(values, func(i, j int) bool {
			a, _ := strconv.Atoi(values[i])
			b, _ := strconv.Atoi(values[j])
			return a < b
		})
		return values
	}

	sort.Strings(values)
	return values
}

// dimensionAxis converte os rótulos para o tipo esperado pelo eixo:
// inteiros para dimensões numéricas, strings para categóricas
func dimensionAxis(dim string, values []string) any {
	if !numericDimensions[dim] {
		return values
	}

	out := make([]int, len(values))
	for i, v := range values {
		out[i], _ = strconv.Atoi(v)
	}
	return out
}
