package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/utils"
)

// Colunas obrigatórias do arquivo CSV do dataset
var csvColumns = []string{
	"date", "year", "month", "sales", "unemployment", "gas_price",
	"cpi_energy", "cpi_all", "search_volume", "vehicle_type", "region",
	"state", "make", "model", "model_year",
}

// ReadFile carrega os registros de vendas de um arquivo CSV. Um
// cabeçalho sem alguma das colunas obrigatórias é erro de carga.
func ReadFile(path string) ([]domain.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o arquivo do dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cabeçalho do dataset: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}
	for _, name := range csvColumns {
		if _, ok := colIndex[name]; !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente no dataset: %s", name)
		}
	}

	var records []domain.SalesRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler a linha %d do dataset: %w", line, err)
		}

		rec, err := parseRecord(row, colIndex)
		if err != nil {
			return nil, fmt.Errorf("linha %d do dataset inválida: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRecord(row []string, colIndex map[string]int) (domain.SalesRecord, error) {
	var rec domain.SalesRecord

	date, err := utils.ParseDate(row[colIndex["date"]])
	if err != nil {
		return rec, fmt.Errorf("data inválida: %w", err)
	}
	rec.Date = *date

	ints := map[string]*int{
		"year":       &rec.Year,
		"month":      &rec.Month,
		"model_year": &rec.ModelYear,
	}
	for name, dst := range ints {
		v, err := strconv.Atoi(row[colIndex[name]])
		if err != nil {
			return rec, fmt.Errorf("coluna %s inválida: %w", name, err)
		}
		*dst = v
	}

	floats := map[string]*float64{
		"sales":         &rec.Sales,
		"unemployment":  &rec.Unemployment,
		"gas_price":     &rec.GasPrice,
		"cpi_energy":    &rec.CPIEnergy,
		"cpi_all":       &rec.CPIAll,
		"search_volume": &rec.SearchVolume,
	}
	for name, dst := range floats {
		v, err := strconv.ParseFloat(row[colIndex[name]], 64)
		if err != nil {
			return rec, fmt.Errorf("coluna %s inválida: %w", name, err)
		}
		*dst = v
	}

	rec.VehicleType = row[colIndex["vehicle_type"]]
	rec.Region = row[colIndex["region"]]
	rec.State = row[colIndex["state"]]
	rec.Make = row[colIndex["make"]]
	rec.Model = row[colIndex["model"]]

	return rec, nil
}

// WriteFile salva os registros no CSV de cache do dataset, criando o
// diretório quando necessário
func WriteFile(path string, records []domain.SalesRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("erro ao criar o diretório do dataset: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("erro ao criar o arquivo do dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return fmt.Errorf("erro ao escrever o cabeçalho do dataset: %w", err)
	}

	for _, rec := range records {
		if err := w.Write(encodeRecord(rec)); err != nil {
			return fmt.Errorf("erro ao escrever registro do dataset: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("erro ao salvar o dataset: %w", err)
	}

	return nil
}

func encodeRecord(rec domain.SalesRecord) []string {
	return []string{
		utils.FormatDate(rec.Date),
		strconv.Itoa(rec.Year),
		strconv.Itoa(rec.Month),
		formatFloat(rec.Sales),
		formatFloat(rec.Unemployment),
		formatFloat(rec.GasPrice),
		formatFloat(rec.CPIEnergy),
		formatFloat(rec.CPIAll),
		formatFloat(rec.SearchVolume),
		rec.VehicleType,
		rec.Region,
		rec.State,
		rec.Make,
		rec.Model,
		strconv.Itoa(rec.ModelYear),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
