package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/freshkart/sales-etl/infrastructure/database/sqlite"
	"github.com/freshkart/sales-etl/infrastructure/export"
	"github.com/freshkart/sales-etl/infrastructure/repository"
	"github.com/freshkart/sales-etl/infrastructure/sources"
	"github.com/freshkart/sales-etl/internal/config"
	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/freshkart/sales-etl/internal/usecases/consolidating"
	"github.com/sirupsen/logrus"
)

// Códigos de saída do job: os wrappers de agendamento tratam qualquer valor
// diferente de zero como falha do dia.
const (
	exitOK    = 0
	exitUsage = 2
	exitError = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	configureLogger()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: etl YYYY-MM-DD")
		return exitUsage
	}
	date := os.Args[1]

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar a configuração")
		return exitError
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
		logrus.WithError(err).Error("Erro ao abrir o banco cumulativo")
		return exitError
	}
	defer conn.Close()

	service := consolidating.NewService(
		sources.NewFileLoader(cfg.Storage.InputDir),
		export.NewCSVExporter(cfg.Storage.OutputDir),
		conn,
		repository.NewOrdersCleanRepository(conn),
		repository.NewDailyCitySalesRepository(conn),
		repository.NewPipelineRunRepository(conn),
	)

	result, err := service.Run(ctx, date)
	if err != nil {
		logDiagnostic(date, err)
		return exitError
	}

	logrus.WithFields(logrus.Fields{
		"run_id":       result.RunID,
		"date":         result.Date,
		"summary_path": result.SummaryPath,
	}).Info("Pipeline terminado")

	return exitOK
}

// logDiagnostic classifica o erro fatal para o diagnóstico de saída
func logDiagnostic(date string, err error) {
	logger := logrus.WithError(err).WithField("date", date)

	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		logger.Error("Data de negócio inválida")
	case errors.Is(err, domain.ErrMissingSource):
		logger.Error("Arquivo de origem ausente, nenhum dado foi processado")
	case errors.Is(err, domain.ErrSourceFormat):
		logger.Error("Origem corrompida, execução abortada sem saída parcial")
	default:
		logger.Error("Erro na execução do pipeline")
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
