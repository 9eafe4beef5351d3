// Package dataset gera, persiste e serve o dataset sintético de vendas
// de veículos usado pelo dashboard
package dataset

import (
	"math"
	"math/rand"
	"time"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
)

// startDate é o primeiro período do dataset. Os períodos seguintes
// avançam de 30 em 30 dias, não por mês de calendário.
var startDate = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

var vehicleTypes = []string{
	domain.VehicleTypeSedan,
	domain.VehicleTypeSUV,
	domain.VehicleTypeTruck,
	domain.VehicleTypeCompact,
}

var regions = []string{"North", "South", "East", "West"}

var statesByRegion = map[string][]string{
	"North": {"NY", "PA", "MI", "IL", "OH", "WI", "MN"},
	"South": {"TX", "FL", "GA", "NC", "SC", "TN", "AL"},
	"East":  {"MA", "CT", "RI", "NJ", "DE", "MD", "VA"},
	"West":  {"CA", "WA", "OR", "NV", "AZ", "CO", "UT"},
}

type makeModel struct {
	Make  string
	Model string
}

var makeModelsByVehicle = map[string][]makeModel{
	domain.VehicleTypeSedan:   {{"Toyota", "Camry"}, {"Honda", "Accord"}, {"Hyundai", "Elantra"}, {"Ford", "Fusion"}},
	domain.VehicleTypeSUV:     {{"Toyota", "RAV4"}, {"Honda", "CR-V"}, {"Ford", "Explorer"}, {"Chevy", "Tahoe"}},
	domain.VehicleTypeTruck:   {{"Ford", "F-150"}, {"Chevy", "Silverado"}, {"Ram", "1500"}, {"Toyota", "Tundra"}},
	domain.VehicleTypeCompact: {{"Toyota", "Corolla"}, {"Honda", "Civic"}, {"Hyundai", "Accent"}, {"Ford", "Focus"}},
}

var modelYears = []int{2020, 2021, 2022, 2023}

var bigStates = map[string]bool{"CA": true, "TX": true, "NY": true, "FL": true}

var smallStates = map[string]bool{"RI": true, "DE": true, "WY": true, "VT": true}

var bestSellers = map[string]bool{"Camry": true, "Civic": true, "F-150": true}

// basePeriod é um período agregado antes da expansão por dimensão
type basePeriod struct {
	date         time.Time
	sales        float64
	unemployment float64
	gasPrice     float64
	cpiEnergy    float64
	cpiAll       float64
	searchVolume float64
}

// Generate produz o dataset sintético completo. A geração é
// determinística para uma mesma seed e número de períodos.
func Generate(seed int64, basePeriods int) []domain.SalesRecord {
	r := rand.New(rand.NewSource(seed))

	base := make([]basePeriod, 0, basePeriods)
	for i := 0; i < basePeriods; i++ {
		p := basePeriod{
			date:         startDate.AddDate(0, 0, 30*i),
			sales:        r.NormFloat64()*3000 + 15000,
			unemployment: uniform(r, 3.5, 7.5),
			gasPrice:     uniform(r, 2.0, 4.5),
			cpiEnergy:    uniform(r, 180, 250),
			cpiAll:       uniform(r, 220, 280),
			searchVolume: uniform(r, 40, 100),
		}

		// Sazonalidade: primavera e fim de ano vendem mais, o começo
		// do ano vende menos
		switch month := int(p.date.Month()); {
		case month >= 3 && month <= 5, month == 11, month == 12:
			p.sales *= 1.2
		case month <= 2:
			p.sales *= 0.8
		}

		if p.gasPrice > 3.5 {
			p.sales *= 0.9
		}
		if p.unemployment > 6.0 {
			p.sales *= 0.85
		}

		base = append(base, p)
	}

	// Expansão por tipo de veículo, região, estado, modelo e ano,
	// cada nível com seu fator multiplicativo e ruído próprio
	records := make([]domain.SalesRecord, 0, len(base)*len(vehicleTypes)*28*4*len(modelYears))
	for _, p := range base {
		for _, vehicleType := range vehicleTypes {
			vehicleFactor := vehicleTypeFactor(vehicleType, p.gasPrice)

			for _, region := range regions {
				rf := regionFactor(region)

				for _, state := range statesByRegion[region] {
					sf := stateFactor(state)
					stateSales := p.sales * vehicleFactor * rf * sf * uniform(r, 0.8, 1.2)

					for _, mm := range makeModelsByVehicle[vehicleType] {
						modelSales := stateSales * makeFactor(mm) * uniform(r, 0.9, 1.1)

						for _, year := range modelYears {
							age := 2024 - year
							yearSales := modelSales * (1 - float64(age)*0.15) * uniform(r, 0.9, 1.1)
							if yearSales < 0 {
								yearSales = 0
							}

							records = append(records, domain.SalesRecord{
								Date:         p.date,
								Year:         p.date.Year(),
								Month:        int(p.date.Month()),
								Sales:        math.Trunc(yearSales),
								Unemployment: p.unemployment,
								GasPrice:     p.gasPrice,
								CPIEnergy:    p.cpiEnergy,
								CPIAll:       p.cpiAll,
								SearchVolume: p.searchVolume,
								VehicleType:  vehicleType,
								Region:       region,
								State:        state,
								Make:         mm.Make,
								Model:        mm.Model,
								ModelYear:    year,
							})
						}
					}
				}
			}
		}
	}

	return records
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// vehicleTypeFactor combina a preferência por tipo de veículo com o
// deslocamento de demanda quando a gasolina está cara
func vehicleTypeFactor(vehicleType string, gasPrice float64) float64 {
	factor := 1.0
	switch vehicleType {
	case domain.VehicleTypeSUV:
		factor = 1.4
	case domain.VehicleTypeTruck:
		factor = 1.2
	case domain.VehicleTypeCompact:
		factor = 0.7
	}

	if gasPrice > 3.5 {
		switch vehicleType {
		case domain.VehicleTypeSUV, domain.VehicleTypeTruck:
			factor *= 0.85
		case domain.VehicleTypeCompact:
			factor *= 1.1
		}
	}

	return factor
}

func regionFactor(region string) float64 {
	switch region {
	case "West":
		return 1.3
	case "South":
		return 1.2
	case "East":
		return 0.9
	}
	return 1.0
}

func stateFactor(state string) float64 {
	if bigStates[state] {
		return 2.0
	}
	if smallStates[state] {
		return 0.3
	}
	return 1.0
}

func makeFactor(mm makeModel) float64 {
	factor := 1.0
	switch mm.Make {
	case "Toyota", "Honda":
		factor = 1.2
	case "Ford", "Chevy":
		factor = 1.1
	}

	if bestSellers[mm.Model] {
		factor *= 1.3
	}

	return factor
}
