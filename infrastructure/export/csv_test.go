package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDailySummary(t *testing.T) {
	t.Run("Escreve o resumo com separador ponto e vírgula", func(t *testing.T) {
		dir := t.TempDir()
		exporter := NewCSVExporter(dir)

		rows := []*domain.DailyCitySales{
			{
				Date:            "2025-06-01",
				City:            "Lyon",
				Channel:         "app",
				OrdersCount:     1,
				UniqueCustomers: 1,
				ItemsSold:       2,
				GrossRevenue:    776.8,
				Refunds:         -6.76,
				NetRevenue:      770.04,
			},
			{
				Date:            "2025-06-01",
				City:            "Paris",
				Channel:         "web",
				OrdersCount:     1,
				UniqueCustomers: 1,
				ItemsSold:       2,
				GrossRevenue:    20.0,
				Refunds:         0.0,
				NetRevenue:      20.0,
			},
		}

		path, err := exporter.WriteDailySummary("2025-06-01", rows)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "daily_summary_20250601.csv"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		expected := "date;city;channel;orders_count;unique_customers;items_sold;gross_revenue_eur;refunds_eur;net_revenue_eur\n" +
			"2025-06-01;Lyon;app;1;1;2;776.8;-6.76;770.04\n" +
			"2025-06-01;Paris;web;1;1;2;20.0;0.0;20.0\n"
		assert.Equal(t, expected, string(content))
	})

	t.Run("Sem vendas escreve apenas o cabeçalho", func(t *testing.T) {
		dir := t.TempDir()
		exporter := NewCSVExporter(dir)

		path, err := exporter.WriteDailySummary("2025-06-01", nil)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "date;city;channel;orders_count;unique_customers;items_sold;gross_revenue_eur;refunds_eur;net_revenue_eur\n", string(content))
	})

	t.Run("Diretório inexistente devolve erro", func(t *testing.T) {
		exporter := NewCSVExporter(filepath.Join(t.TempDir(), "nao_existe"))

		_, err := exporter.WriteDailySummary("2025-06-01", nil)
		assert.Error(t, err)
	})
}

func TestWriteRejectedItems(t *testing.T) {
	t.Run("Escreve os rejeitados com o motivo", func(t *testing.T) {
		dir := t.TempDir()
		exporter := NewCSVExporter(dir)

		rows := []domain.RejectedItem{
			{
				ItemRow: domain.ItemRow{
					OrderID:       "O2",
					CustomerID:    "C2",
					Channel:       "app",
					CreatedAt:     "2025-06-01T10:00:00",
					PaymentStatus: domain.PaymentStatusPaid,
					SKU:           "SKU-3",
					UnitPrice:     -4.0,
					Quantity:      1,
				},
				Reason: domain.RejectReasonNegativePrice,
			},
		}

		path, err := exporter.WriteRejectedItems("2025-06-01", rows)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "rejected_items_20250601.csv"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		expected := "order_id;customer_id;channel;created_at;payment_status;sku;unit_price;quantity;reason\n" +
			"O2;C2;app;2025-06-01T10:00:00;paid;SKU-3;-4.0;1;negative unit price\n"
		assert.Equal(t, expected, string(content))
	})
}
