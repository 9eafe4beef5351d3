package session

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kipmadden/car-sales-dashboard-api/infrastructure/dataset"
	"github.com/kipmadden/car-sales-dashboard-api/internal/config"
	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/forecasting"
)

// Service expõe as operações de cenário do dashboard sobre as sessões
type Service interface {
	Create() (*domain.SessionSnapshot, error)
	UpdateFilters(id string, filters domain.RecordFilter) (*domain.SessionSnapshot, error)
	UpdateModifiers(id string, modifiers domain.ScenarioModifiers, months int) (*domain.SessionSnapshot, error)
	UpdateModel(id string, modelType string) (*domain.SessionSnapshot, error)
	Snapshot(id string) (*domain.SessionSnapshot, error)
	Series(id string) (domain.Series, error)
	FilteredRecords(id string) ([]domain.SalesRecord, error)
	Delete(id string) error
	Options() domain.FilterOptions
}

type service struct {
	cfg     *config.Config
	store   *dataset.Store
	manager *Manager
}

func NewService(cfg *config.Config, store *dataset.Store, manager *Manager) Service {
	return &service{
		cfg:     cfg,
		store:   store,
		manager: manager,
	}
}

// Create monta uma sessão nova sobre o dataset completo, treina o
// modelo padrão e projeta o horizonte padrão antes de registrá-la
func (s *service) Create() (*domain.SessionSnapshot, error) {
	sess, err := newSession(s.cfg.Scenario)
	if err != nil {
		return nil, err
	}

	sess.records = s.store.Filter(sess.Filters)
	s.recompute(sess, true)

	s.manager.add(sess)

	logrus.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"model_type": sess.ModelType,
		"records":    len(sess.records),
		"rows":       len(sess.series),
	}).Info("Sessão do dashboard criada")

	return sess.snapshot(), nil
}

// UpdateFilters aplica o novo conjunto de filtros, refiltra o dataset
// e refaz treino e previsão
func (s *service) UpdateFilters(id string, filters domain.RecordFilter) (*domain.SessionSnapshot, error) {
	return s.withSession(id, func(sess *Session) {
		sess.Filters = filters
		sess.records = s.store.Filter(filters)
		s.recompute(sess, true)
	})
}

// UpdateModifiers aplica os modificadores e o horizonte e refaz apenas
// a previsão, mantendo o modelo treinado. Horizonte fora da faixa
// retorna erro de validação sem alterar a sessão.
func (s *service) UpdateModifiers(id string, modifiers domain.ScenarioModifiers, months int) (*domain.SessionSnapshot, error) {
	if months < 0 || months > s.cfg.Scenario.MaxForecastMonths {
		return nil, fmt.Errorf("%w: %d", forecasting.ErrInvalidHorizon, months)
	}

	return s.withSession(id, func(sess *Session) {
		sess.Modifiers = modifiers
		sess.ForecastMonths = months
		s.recompute(sess, false)
	})
}

// UpdateModel troca o modelo da sessão e refaz treino e previsão. Um
// tipo desconhecido retorna erro e preserva o estado atual.
func (s *service) UpdateModel(id string, modelType string) (*domain.SessionSnapshot, error) {
	engine, err := forecasting.NewEngine(modelType)
	if err != nil {
		return nil, err
	}

	return s.withSession(id, func(sess *Session) {
		sess.ModelType = modelType
		sess.engine = engine
		s.recompute(sess, true)
	})
}

// Snapshot retorna o resumo do estado atual da sessão
func (s *service) Snapshot(id string) (*domain.SessionSnapshot, error) {
	return s.withSession(id, func(*Session) {})
}

// Series retorna a série combinada atual da sessão
func (s *service) Series(id string) (domain.Series, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.LastActiveAt = time.Now()
	return sess.series, nil
}

// FilteredRecords retorna os registros filtrados atuais da sessão
func (s *service) FilteredRecords(id string) ([]domain.SalesRecord, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.LastActiveAt = time.Now()
	return sess.records, nil
}

// Delete encerra a sessão e a remove do registro
func (s *service) Delete(id string) error {
	if _, ok := s.manager.Get(id); !ok {
		return ErrSessionNotFound
	}

	s.manager.Delete(id)

	logrus.WithField("session_id", id).Info("Sessão do dashboard encerrada")
	return nil
}

// Options retorna os valores distintos de cada dimensão filtrável do dataset
func (s *service) Options() domain.FilterOptions {
	return s.store.Options()
}

// withSession executa fn sob o mutex da sessão, renovando o carimbo de
// atividade, e retorna o snapshot resultante
func (s *service) withSession(id string, fn func(*Session)) (*domain.SessionSnapshot, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.LastActiveAt = time.Now()
	fn(sess)

	return sess.snapshot(), nil
}

// recompute treina e projeta a série da sessão. Falhas de treino ou
// previsão degradam para a série vazia e não interrompem a operação.
func (s *service) recompute(sess *Session, retrain bool) {
	if retrain {
		if err := sess.engine.Train(sess.records); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"session_id": sess.ID,
				"model_type": sess.ModelType,
				"records":    len(sess.records),
			}).Warn("Falha ao treinar o modelo da sessão")

			sess.series = domain.Series{}
			return
		}
	}

	series, err := sess.engine.Forecast(sess.records, sess.Modifiers, sess.ForecastMonths)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"session_id":   sess.ID,
			"model_type":   sess.ModelType,
			"months_ahead": sess.ForecastMonths,
		}).Warn("Falha ao gerar a previsão da sessão")

		sess.series = domain.Series{}
		return
	}

	sess.series = series
}
