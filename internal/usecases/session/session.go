// Package session mantém o estado de cenário de cada usuário do
// dashboard: filtros, modelo, modificadores e a série combinada
// calculada a partir deles. Cada sessão é isolada das demais; o
// dataset compartilhado é somente leitura.
package session

import (
	"sync"
	"time"

	"github.com/kipmadden/car-sales-dashboard-api/internal/config"
	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/forecasting"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/utils"
)

// Session é o estado de cenário de um usuário. O mutex serializa as
// operações da sessão: cada operação executa até o fim e a última
// escrita vence.
type Session struct {
	ID             string
	CreatedAt      time.Time
	LastActiveAt   time.Time
	Filters        domain.RecordFilter
	ModelType      string
	Modifiers      domain.ScenarioModifiers
	ForecastMonths int

	mu      sync.Mutex
	engine  *forecasting.Engine
	records []domain.SalesRecord
	series  domain.Series
}

// newSession cria uma sessão com os padrões de cenário configurados e
// o conjunto de filtros vazio (dataset completo)
func newSession(cfg config.Scenario) (*Session, error) {
	engine, err := forecasting.NewEngine(cfg.DefaultModelType)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Session{
		ID:             id,
		CreatedAt:      now,
		LastActiveAt:   now,
		ModelType:      cfg.DefaultModelType,
		Modifiers:      domain.NeutralModifiers(),
		ForecastMonths: cfg.DefaultForecastMonths,
		engine:         engine,
	}, nil
}

func (s *Session) snapshot() *domain.SessionSnapshot {
	return &domain.SessionSnapshot{
		ID:             s.ID,
		ModelType:      s.ModelType,
		Filters:        s.Filters,
		Modifiers:      s.Modifiers,
		ForecastMonths: s.ForecastMonths,
		RecordCount:    len(s.records),
		SeriesLength:   len(s.series),
		ForecastRows:   len(s.series.Forecast()),
		CreatedAt:      s.CreatedAt,
		LastActiveAt:   s.LastActiveAt,
	}
}
