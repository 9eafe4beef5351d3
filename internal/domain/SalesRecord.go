// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Tipos de veículo presentes no dataset
const (
	VehicleTypeSedan   = "Sedan"
	VehicleTypeSUV     = "SUV"
	VehicleTypeTruck   = "Truck"
	VehicleTypeCompact = "Compact"
)

// SalesRecord representa uma linha do dataset de vendas de veículos
type SalesRecord struct {
	Date         time.Time `json:"date"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Sales        float64   `json:"sales"`
	Unemployment float64   `json:"unemployment"`
	GasPrice     float64   `json:"gas_price"`
	CPIEnergy    float64   `json:"cpi_energy"`
	CPIAll       float64   `json:"cpi_all"`
	SearchVolume float64   `json:"search_volume"`
	VehicleType  string    `json:"vehicle_type"`
	Region       string    `json:"region"`
	State        string    `json:"state"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	ModelYear    int       `json:"model_year"`
}

// MakeModel retorna o par marca/modelo usado nos rankings de modelos
func (r SalesRecord) MakeModel() string {
	return r.Make + " " + r.Model
}
