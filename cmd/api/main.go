package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kipmadden/car-sales-dashboard-api/infrastructure/dataset"
	"github.com/kipmadden/car-sales-dashboard-api/internal/api"
	"github.com/kipmadden/car-sales-dashboard-api/internal/config"
	"github.com/kipmadden/car-sales-dashboard-api/internal/scheduler"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/authenticating"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Carrega o dataset sintético do cache em disco, gerando e
	// persistindo na primeira execução
	store, err := dataset.Load(cfg.Dataset)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}

	manager := session.NewManager()
	sessionService := session.NewService(cfg, store, manager)
	authenticator := authenticating.NewService(cfg, sessionService)

	// Inicia o sweeper de sessões ociosas em background
	sweeperService := scheduler.NewSessionSweeperService(manager, cfg)
	if err := sweeperService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o sweeper de sessões")
	} else {
		logrus.Info("Sweeper de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, sessionService, authenticator, sweeperService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
