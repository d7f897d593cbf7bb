// Package export escreve os relatórios CSV do pipeline no diretório de
// saída, com ponto e vírgula como separador (formato consumido pelo
// financeiro).
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/freshkart/sales-etl/pkg/utils"
	"github.com/pkg/errors"
)

var dailySummaryHeader = []string{
	"date", "city", "channel", "orders_count", "unique_customers",
	"items_sold", "gross_revenue_eur", "refunds_eur", "net_revenue_eur",
}

var rejectedItemsHeader = []string{
	"order_id", "customer_id", "channel", "created_at", "payment_status",
	"sku", "unit_price", "quantity", "reason",
}

type Exporter interface {
	WriteDailySummary(date string, rows []*domain.DailyCitySales) (string, error)
	WriteRejectedItems(date string, rows []domain.RejectedItem) (string, error)
}

type CSVExporter struct {
	outputDir string
}

func NewCSVExporter(outputDir string) *CSVExporter {
	return &CSVExporter{
		outputDir: outputDir,
	}
}

// WriteDailySummary grava daily_summary_<YYYYMMDD>.csv. As linhas chegam já
// ordenadas por cidade e canal (determinismo do agregador) e são escritas na
// ordem recebida.
func (e *CSVExporter) WriteDailySummary(date string, rows []*domain.DailyCitySales) (string, error) {
	path := filepath.Join(e.outputDir, fmt.Sprintf("daily_summary_%s.csv", utils.CompactDate(date)))

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Date,
			row.City,
			row.Channel,
			strconv.Itoa(row.OrdersCount),
			strconv.Itoa(row.UniqueCustomers),
			strconv.Itoa(row.ItemsSold),
			utils.FormatAmount(row.GrossRevenue),
			utils.FormatAmount(row.Refunds),
			utils.FormatAmount(row.NetRevenue),
		})
	}

	if err := e.writeFile(path, dailySummaryHeader, records); err != nil {
		return "", err
	}

	return path, nil
}

// WriteRejectedItems grava rejected_items_<YYYYMMDD>.csv. O chamador só
// invoca quando há rejeições: uma execução sem rejeições não produz arquivo.
func (e *CSVExporter) WriteRejectedItems(date string, rows []domain.RejectedItem) (string, error) {
	path := filepath.Join(e.outputDir, fmt.Sprintf("rejected_items_%s.csv", utils.CompactDate(date)))

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.OrderID,
			row.CustomerID,
			row.Channel,
			row.CreatedAt,
			string(row.PaymentStatus),
			row.SKU,
			utils.FormatAmount(row.UnitPrice),
			strconv.Itoa(row.Quantity),
			row.Reason,
		})
	}

	if err := e.writeFile(path, rejectedItemsHeader, records); err != nil {
		return "", err
	}

	return path, nil
}

func (e *CSVExporter) writeFile(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar %s", path)
	}

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(header); err != nil {
		f.Close()
		return errors.Wrapf(err, "erro ao escrever cabeçalho de %s", path)
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return errors.Wrapf(err, "erro ao escrever linhas de %s", path)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.Wrapf(err, "erro ao finalizar %s", path)
	}

	return errors.Wrapf(f.Close(), "erro ao fechar %s", path)
}
