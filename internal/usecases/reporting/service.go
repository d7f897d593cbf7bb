// Package reporting expõe o lado de leitura do banco cumulativo para a API
// de consulta: resumos diários, vendas limpas e trilha de execuções.
package reporting

import (
	"github.com/freshkart/sales-etl/infrastructure/repository"
	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/freshkart/sales-etl/pkg/utils"
)

type ReportingService interface {
	DailySummary(date string) ([]*domain.DailyCitySales, error)
	CleanOrders(date string) ([]*domain.OrderRevenue, error)
	Runs(date string) ([]*domain.PipelineRun, error)
}

type reportingService struct {
	summaryRepo repository.DailyCitySalesRepository
	ordersRepo  repository.OrdersCleanRepository
	runRepo     repository.PipelineRunRepository
}

func NewService(
	summaryRepo repository.DailyCitySalesRepository,
	ordersRepo repository.OrdersCleanRepository,
	runRepo repository.PipelineRunRepository,
) ReportingService {
	return &reportingService{
		summaryRepo: summaryRepo,
		ordersRepo:  ordersRepo,
		runRepo:     runRepo,
	}
}

func (s *reportingService) DailySummary(date string) ([]*domain.DailyCitySales, error) {
	if _, err := utils.ParseBusinessDate(date); err != nil {
		return nil, err
	}

	return s.summaryRepo.GetByDate(date)
}

func (s *reportingService) CleanOrders(date string) ([]*domain.OrderRevenue, error) {
	if _, err := utils.ParseBusinessDate(date); err != nil {
		return nil, err
	}

	return s.ordersRepo.GetByDate(date)
}

func (s *reportingService) Runs(date string) ([]*domain.PipelineRun, error) {
	if _, err := utils.ParseBusinessDate(date); err != nil {
		return nil, err
	}

	return s.runRepo.GetByDate(date)
}
