package consolidating

import (
	"context"
	"database/sql"
	"time"

	"github.com/freshkart/sales-etl/infrastructure/database/sqlite"
	"github.com/freshkart/sales-etl/infrastructure/export"
	"github.com/freshkart/sales-etl/infrastructure/repository"
	"github.com/freshkart/sales-etl/infrastructure/sources"
	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/freshkart/sales-etl/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Result resume uma execução completa do pipeline para uma data.
type Result struct {
	RunID             string
	Date              string
	OrdersKept        int
	ItemsRejected     int
	SummaryRows       int
	SummaryPath       string
	RejectedItemsPath string
}

// Service orquestra o pipeline completo: carga, limpeza, enriquecimento,
// cálculo de receita, agregação e persistência idempotente. A execução é
// sequencial e tudo-ou-nada: erros de carga abortam antes de qualquer
// saída, e a escrita no banco cumulativo é uma única transação.
type Service struct {
	loader      sources.Loader
	exporter    export.Exporter
	conn        *sqlite.Connection
	ordersRepo  repository.OrdersCleanRepository
	summaryRepo repository.DailyCitySalesRepository
	runRepo     repository.PipelineRunRepository
}

func NewService(
	loader sources.Loader,
	exporter export.Exporter,
	conn *sqlite.Connection,
	ordersRepo repository.OrdersCleanRepository,
	summaryRepo repository.DailyCitySalesRepository,
	runRepo repository.PipelineRunRepository,
) *Service {
	return &Service{
		loader:      loader,
		exporter:    exporter,
		conn:        conn,
		ordersRepo:  ordersRepo,
		summaryRepo: summaryRepo,
		runRepo:     runRepo,
	}
}

// Run processa a data de negócio informada (YYYY-MM-DD). Reexecutar a mesma
// data com as mesmas origens produz o mesmo CSV e não acumula linhas no
// banco cumulativo.
func (s *Service) Run(ctx context.Context, date string) (*Result, error) {
	if _, err := utils.ParseBusinessDate(date); err != nil {
		return nil, err
	}

	startedAt := time.Now()
	logrus.WithField("date", date).Info("Iniciando consolidação diária de vendas")

	// 1. Carga (fail-fast: nenhuma saída parcial em erro de origem)
	srcs, err := s.loader.Load(date)
	if err != nil {
		return nil, err
	}

	// 2-4. Limpeza: clientes ativos, deduplicação, regras de negócio
	cities := ActiveCustomerCities(srcs.Customers)
	items := NormalizeOrders(srcs.Orders)
	kept, rejected := ApplyBusinessRules(items, cities)

	survivingOrders := make(map[string]struct{}, len(kept))
	for _, item := range kept {
		survivingOrders[item.OrderID] = struct{}{}
	}

	// 5-6. Reembolsos e receita por venda
	refundsByOrder := AggregateRefunds(srcs.Refunds, survivingOrders)
	orders := ComputeOrderRevenue(date, kept, cities, refundsByOrder)

	// 7. Agregados diários por cidade e canal
	summaries := AggregateDaily(date, orders)

	// 8. Exportação dos relatórios
	summaryPath, err := s.exporter.WriteDailySummary(date, summaries)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao exportar o resumo diário")
	}

	var rejectedPath string
	if len(rejected) > 0 {
		rejectedPath, err = s.exporter.WriteRejectedItems(date, rejected)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao exportar os itens rejeitados")
		}
	} else {
		logrus.Info("NO REJECTED ITEMS")
	}

	// 8. Persistência no banco cumulativo, em transação única
	run, err := s.buildRun(date, orders, rejected, startedAt)
	if err != nil {
		return nil, err
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, order := range orders {
			if err := s.ordersRepo.Upsert(tx, order); err != nil {
				return err
			}
		}
		for _, summary := range summaries {
			if err := s.summaryRepo.Upsert(tx, summary); err != nil {
				return err
			}
		}
		return s.runRepo.Insert(tx, run)
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar no banco cumulativo")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":         run.ID,
		"date":           date,
		"orders_kept":    len(orders),
		"items_rejected": len(rejected),
		"summary_rows":   len(summaries),
		"duration":       time.Since(startedAt).String(),
	}).Info("Consolidação diária concluída com sucesso")

	return &Result{
		RunID:             run.ID,
		Date:              date,
		OrdersKept:        len(orders),
		ItemsRejected:     len(rejected),
		SummaryRows:       len(summaries),
		SummaryPath:       summaryPath,
		RejectedItemsPath: rejectedPath,
	}, nil
}

func (s *Service) buildRun(
	date string,
	orders []*domain.OrderRevenue,
	rejected []domain.RejectedItem,
	startedAt time.Time,
) (*domain.PipelineRun, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o identificador da execução")
	}

	var gross, net float64
	for _, order := range orders {
		gross += order.GrossRevenue
		net += order.NetRevenue
	}

	return &domain.PipelineRun{
		ID:            runID,
		Date:          date,
		OrdersKept:    len(orders),
		ItemsRejected: len(rejected),
		GrossRevenue:  utils.RoundWithTwoDecimalPlace(gross),
		NetRevenue:    utils.RoundWithTwoDecimalPlace(net),
		StartedAt:     startedAt,
		FinishedAt:    time.Now(),
	}, nil
}
