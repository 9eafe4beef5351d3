package dataset

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/kipmadden/car-sales-dashboard-api/internal/config"
	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
)

// Store mantém o dataset imutável em memória depois do boot. As
// sessões compartilham o Store apenas para leitura.
type Store struct {
	records []domain.SalesRecord
	options domain.FilterOptions
}

// Load lê o CSV de cache quando existe; caso contrário gera o dataset
// sintético e o salva para os próximos boots
func Load(cfg config.Dataset) (*Store, error) {
	if _, err := os.Stat(cfg.CSVPath); err == nil {
		records, err := ReadFile(cfg.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar o dataset de %s: %w", cfg.CSVPath, err)
		}

		logrus.Infof("Dataset carregado de %s: %d registros", cfg.CSVPath, len(records))
		return NewStore(records), nil
	}

	records := Generate(cfg.Seed, cfg.BasePeriods)

	// O cache em disco é conveniência: sem ele o dataset segue vivo em memória
	if err := WriteFile(cfg.CSVPath, records); err != nil {
		logrus.WithError(err).Warnf("Não foi possível salvar o dataset em %s", cfg.CSVPath)
	} else {
		logrus.Infof("Dataset sintético gerado e salvo em %s: %d registros", cfg.CSVPath, len(records))
	}

	return NewStore(records), nil
}

// NewStore monta um Store a partir de registros já carregados
func NewStore(records []domain.SalesRecord) *Store {
	return &Store{
		records: records,
		options: buildOptions(records),
	}
}

// All retorna todos os registros do dataset. O slice retornado é
// compartilhado e não deve ser modificado.
func (s *Store) All() []domain.SalesRecord {
	return s.records
}

// Len retorna o número de registros carregados
func (s *Store) Len() int {
	return len(s.records)
}

// Filter retorna os registros que pertencem à seleção. Dimensões sem
// valores selecionados não filtram nada.
func (s *Store) Filter(f domain.RecordFilter) []domain.SalesRecord {
	if f.IsZero() {
		return s.records
	}

	out := make([]domain.SalesRecord, 0, len(s.records))
	for _, rec := range s.records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}

	return out
}

// Options retorna os valores únicos de cada dimensão para os seletores
// do dashboard
func (s *Store) Options() domain.FilterOptions {
	return s.options
}

func buildOptions(records []domain.SalesRecord) domain.FilterOptions {
	regions := make(map[string]bool)
	states := make(map[string]bool)
	vehicleTypes := make(map[string]bool)
	makes := make(map[string]bool)
	models := make(map[string]bool)
	years := make(map[int]bool)

	for _, rec := range records {
		regions[rec.Region] = true
		states[rec.State] = true
		vehicleTypes[rec.VehicleType] = true
		makes[rec.Make] = true
		models[rec.Model] = true
		years[rec.ModelYear] = true
	}

	return domain.FilterOptions{
		Regions:      sortedStrings(regions),
		States:       sortedStrings(states),
		VehicleTypes: sortedStrings(vehicleTypes),
		Makes:        sortedStrings(makes),
		Models:       sortedStrings(models),
		ModelYears:   sortedInts(years),
	}
}

func sortedStrings(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedInts(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
