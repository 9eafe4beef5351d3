package domain

// RecordFilter descreve a seleção de dimensões do dashboard. Uma lista
// vazia em qualquer dimensão significa "sem filtro" para aquela dimensão.
type RecordFilter struct {
	Regions      []string `json:"regions"`
	States       []string `json:"states"`
	VehicleTypes []string `json:"vehicle_types"`
	Makes        []string `json:"makes"`
	Models       []string `json:"models"`
	ModelYears   []int    `json:"model_years"`
}

// IsZero indica se nenhuma dimensão está filtrada
func (f RecordFilter) IsZero() bool {
	return len(f.Regions) == 0 && len(f.States) == 0 && len(f.VehicleTypes) == 0 &&
		len(f.Makes) == 0 && len(f.Models) == 0 && len(f.ModelYears) == 0
}

// Matches verifica se o registro pertence à seleção
func (f RecordFilter) Matches(r SalesRecord) bool {
	if !containsString(f.Regions, r.Region) {
		return false
	}
	if !containsString(f.States, r.State) {
		return false
	}
	if !containsString(f.VehicleTypes, r.VehicleType) {
		return false
	}
	if !containsString(f.Makes, r.Make) {
		return false
	}
	if !containsString(f.Models, r.Model) {
		return false
	}
	if !containsInt(f.ModelYears, r.ModelYear) {
		return false
	}
	return true
}

// containsString trata lista vazia como "aceita tudo"
func containsString(values []string, v string) bool {
	if len(values) == 0 {
		return true
	}
	for _, c := range values {
		if c == v {
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	if len(values) == 0 {
		return true
	}
	for _, c := range values {
		if c == v {
			return true
		}
	}
	return false
}

// FilterOptions lista os valores únicos disponíveis por dimensão,
// ordenados, para montar os seletores do dashboard
type FilterOptions struct {
	Regions      []string `json:"regions"`
	States       []string `json:"states"`
	VehicleTypes []string `json:"vehicle_types"`
	Makes        []string `json:"makes"`
	Models       []string `json:"models"`
	ModelYears   []int    `json:"model_years"`
}
