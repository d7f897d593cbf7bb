package main

import (
	"context"
	"time"

	"github.com/freshkart/sales-etl/infrastructure/database/sqlite"
	"github.com/freshkart/sales-etl/infrastructure/export"
	"github.com/freshkart/sales-etl/infrastructure/repository"
	"github.com/freshkart/sales-etl/infrastructure/sources"
	"github.com/freshkart/sales-etl/internal/api"
	"github.com/freshkart/sales-etl/internal/config"
	"github.com/freshkart/sales-etl/internal/scheduler"
	"github.com/freshkart/sales-etl/internal/usecases/consolidating"
	"github.com/freshkart/sales-etl/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := sqlite.NewConnection(ctx, cfg.Storage.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o banco cumulativo")
	}
	defer conn.Close()

	ordersRepo := repository.NewOrdersCleanRepository(conn)
	summaryRepo := repository.NewDailyCitySalesRepository(conn)
	runRepo := repository.NewPipelineRunRepository(conn)

	consolidationService := consolidating.NewService(
		sources.NewFileLoader(cfg.Storage.InputDir),
		export.NewCSVExporter(cfg.Storage.OutputDir),
		conn,
		ordersRepo,
		summaryRepo,
		runRepo,
	)

	reportingService := reporting.NewService(summaryRepo, ordersRepo, runRepo)

	consolidationSyncService := scheduler.NewDailyConsolidationSyncService(consolidationService, cfg)

	if err := consolidationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação diária")
	} else {
		logrus.Info("Agendador de consolidação diária iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		consolidationSyncService,
	)
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
