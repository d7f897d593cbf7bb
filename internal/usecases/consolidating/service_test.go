package consolidating

import (
	"context"
	"testing"

	"github.com/freshkart/sales-etl/infrastructure/database/sqlite"
	exportmocks "github.com/freshkart/sales-etl/infrastructure/export/mocks"
	"github.com/freshkart/sales-etl/infrastructure/repository"
	"github.com/freshkart/sales-etl/infrastructure/sources"
	sourcemocks "github.com/freshkart/sales-etl/infrastructure/sources/mocks"
	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *sourcemocks.MockLoader, *exportmocks.MockExporter, *sqlite.Connection) {
	t.Helper()

	conn, err := sqlite.NewConnection(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	loader := sourcemocks.NewMockLoader(ctrl)
	exporter := exportmocks.NewMockExporter(ctrl)

	svc := NewService(
		loader,
		exporter,
		conn,
		repository.NewOrdersCleanRepository(conn),
		repository.NewDailyCitySalesRepository(conn),
		repository.NewPipelineRunRepository(conn),
	)

	return svc, loader, exporter, conn
}

func fixtureSources() *sources.Sources {
	return &sources.Sources{
		Customers: []domain.Customer{
			{CustomerID: "C1", City: "Paris", IsActive: true},
			{CustomerID: "C2", City: "Lyon", IsActive: true},
			{CustomerID: "C3", City: "Lyon", IsActive: false},
		},
		Orders: []domain.Order{
			{
				OrderID:       "O1",
				CustomerID:    "C1",
				Channel:       "web",
				CreatedAt:     "2025-06-01T09:30:00",
				PaymentStatus: domain.PaymentStatusPaid,
				Items: []domain.OrderItem{
					{SKU: "SKU-1", UnitPrice: 10.0, Quantity: 2},
				},
			},
			{
				OrderID:       "O2",
				CustomerID:    "C2",
				Channel:       "app",
				CreatedAt:     "2025-06-01T10:00:00",
				PaymentStatus: domain.PaymentStatusPaid,
				Items: []domain.OrderItem{
					{SKU: "SKU-2", UnitPrice: 388.4, Quantity: 2},
					{SKU: "SKU-3", UnitPrice: -4.0, Quantity: 1},
				},
			},
			{
				OrderID:       "O3",
				CustomerID:    "C3",
				Channel:       "web",
				CreatedAt:     "2025-06-01T11:00:00",
				PaymentStatus: domain.PaymentStatusPaid,
				Items: []domain.OrderItem{
					{SKU: "SKU-4", UnitPrice: 7.0, Quantity: 1},
				},
			},
		},
		Refunds: []domain.Refund{
			{RefundID: "R1", OrderID: "O2", Amount: -6.76},
			{RefundID: "R2", OrderID: "O3", Amount: -7.0},
		},
	}
}

func TestServiceRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Execução completa exporta e persiste", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, loader, exporter, _ := newTestService(t, ctrl)

		loader.EXPECT().Load("2025-06-01").Return(fixtureSources(), nil)

		exporter.EXPECT().
			WriteDailySummary("2025-06-01", gomock.Any()).
			DoAndReturn(func(_ string, rows []*domain.DailyCitySales) (string, error) {
				require.Len(t, rows, 2)
				assert.Equal(t, "Lyon", rows[0].City)
				assert.InDelta(t, 770.04, rows[0].NetRevenue, 1e-9)
				assert.Equal(t, "Paris", rows[1].City)
				assert.InDelta(t, 20.0, rows[1].GrossRevenue, 1e-9)
				return "daily_summary_20250601.csv", nil
			})

		exporter.EXPECT().
			WriteRejectedItems("2025-06-01", gomock.Any()).
			DoAndReturn(func(_ string, rows []domain.RejectedItem) (string, error) {
				require.Len(t, rows, 1)
				assert.Equal(t, "SKU-3", rows[0].SKU)
				return "rejected_items_20250601.csv", nil
			})

		result, err := svc.Run(ctx, "2025-06-01")
		require.NoError(t, err)

		assert.NotEmpty(t, result.RunID)
		assert.Equal(t, 2, result.OrdersKept)
		assert.Equal(t, 1, result.ItemsRejected)
		assert.Equal(t, 2, result.SummaryRows)
		assert.Equal(t, "daily_summary_20250601.csv", result.SummaryPath)
	})

	t.Run("Sem rejeitados não escreve o CSV de rejeitados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, loader, exporter, _ := newTestService(t, ctrl)

		srcs := fixtureSources()
		srcs.Orders = srcs.Orders[:1]

		loader.EXPECT().Load("2025-06-01").Return(srcs, nil)
		exporter.EXPECT().WriteDailySummary("2025-06-01", gomock.Any()).Return("daily_summary_20250601.csv", nil)

		result, err := svc.Run(ctx, "2025-06-01")
		require.NoError(t, err)
		assert.Zero(t, result.ItemsRejected)
		assert.Empty(t, result.RejectedItemsPath)
	})

	t.Run("Data inválida aborta antes da carga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _, _ := newTestService(t, ctrl)

		_, err := svc.Run(ctx, "01/06/2025")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("Erro de carga aborta sem exportar nem persistir", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, loader, _, conn := newTestService(t, ctrl)

		loader.EXPECT().
			Load("2025-06-01").
			Return(nil, &domain.MissingSourceError{Path: "data/input/orders_2025-06-01.json"})

		_, err := svc.Run(ctx, "2025-06-01")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingSource)

		count, err := repository.NewOrdersCleanRepository(conn).CountByDate("2025-06-01")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Erro de exportação impede a gravação no banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, loader, exporter, conn := newTestService(t, ctrl)

		loader.EXPECT().Load("2025-06-01").Return(fixtureSources(), nil)
		exporter.EXPECT().
			WriteDailySummary("2025-06-01", gomock.Any()).
			Return("", errors.New("disco cheio"))

		_, err := svc.Run(ctx, "2025-06-01")
		require.Error(t, err)

		count, err := repository.NewDailyCitySalesRepository(conn).CountByDate("2025-06-01")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Reexecução da mesma data não acumula linhas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, loader, exporter, conn := newTestService(t, ctrl)

		loader.EXPECT().Load("2025-06-01").Return(fixtureSources(), nil).Times(2)
		exporter.EXPECT().WriteDailySummary("2025-06-01", gomock.Any()).Return("daily_summary_20250601.csv", nil).Times(2)
		exporter.EXPECT().WriteRejectedItems("2025-06-01", gomock.Any()).Return("rejected_items_20250601.csv", nil).Times(2)

		_, err := svc.Run(ctx, "2025-06-01")
		require.NoError(t, err)
		_, err = svc.Run(ctx, "2025-06-01")
		require.NoError(t, err)

		ordersCount, err := repository.NewOrdersCleanRepository(conn).CountByDate("2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, 2, ordersCount)

		summaryCount, err := repository.NewDailyCitySalesRepository(conn).CountByDate("2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, 2, summaryCount)

		// O registro de auditoria, por outro lado, é sempre acrescentado
		runs, err := repository.NewPipelineRunRepository(conn).GetByDate("2025-06-01")
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}
