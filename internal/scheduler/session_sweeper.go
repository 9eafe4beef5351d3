// Package scheduler agenda as rotinas de manutenção da aplicação.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/kipmadden/car-sales-dashboard-api/internal/config"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
)

// SessionSweeperConfig representa a configuração do sweeper de sessões
type SessionSweeperConfig struct {
	CronSchedule string
	TTL          time.Duration
	SweepEnabled bool
}

// SessionSweeperService gerencia o agendamento e execução da remoção
// de sessões ociosas do dashboard
type SessionSweeperService struct {
	scheduler            *gocron.Scheduler
	config               SessionSweeperConfig
	manager              *session.Manager
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepEvicted     int
}

// NewSessionSweeperService cria uma nova instância do sweeper de sessões
func NewSessionSweeperService(manager *session.Manager, appConfig *config.Config) *SessionSweeperService {
	sweeperConfig := SessionSweeperConfig{
		CronSchedule: appConfig.Session.SweepCron,
		TTL:          appConfig.Session.TTL,
		SweepEnabled: appConfig.Session.SweepEnabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweeperConfig.CronSchedule,
		"session_ttl":   sweeperConfig.TTL.String(),
		"sweep_enabled": sweeperConfig.SweepEnabled,
	}).Info("Configuração do sweeper de sessões carregada")

	return &SessionSweeperService{
		scheduler:    scheduler,
		config:       sweeperConfig,
		manager:      manager,
		sweepRunning: false,
	}
}

// Start inicia o agendador
func (s *SessionSweeperService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Sweeper de sessões desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do sweeper de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepIdleSessions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o sweeper de sessões: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do sweeper de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// sweepIdleSessions remove as sessões sem atividade além do TTL configurado
func (s *SessionSweeperService) sweepIdleSessions() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de sessões já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	startTime := time.Now()
	s.lastSweepStartedAt = startTime

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	before := s.manager.Count()
	evicted := s.manager.EvictIdle(s.config.TTL)

	s.lastSweepEvicted = evicted
	s.lastSweepCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"sessions_before": before,
		"evicted":         evicted,
		"remaining":       s.manager.Count(),
		"duration":        time.Since(startTime).String(),
	}).Info("Varredura de sessões ociosas concluída")
}

// TriggerManualSweep inicia manualmente uma varredura de sessões
func (s *SessionSweeperService) TriggerManualSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de sessões")
	go s.sweepIdleSessions()
}

// GetStatus retorna o status atual do agendador
func (s *SessionSweeperService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"session_ttl":             s.config.TTL.String(),
		"active_sessions":         s.manager.Count(),
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
		"last_sweep_evicted":      s.lastSweepEvicted,
	}
}
