package utils

import (
	"strings"
	"time"

	"github.com/freshkart/sales-etl/internal/domain"
)

// ParseBusinessDate valida o argumento de data do pipeline (YYYY-MM-DD).
func ParseBusinessDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, &domain.InvalidDateError{Value: dateStr}
	}

	return date, nil
}

// CompactDate converte YYYY-MM-DD em YYYYMMDD para os nomes dos arquivos de
// saída (daily_summary_<YYYYMMDD>.csv, rejected_items_<YYYYMMDD>.csv).
func CompactDate(dateStr string) string {
	return strings.ReplaceAll(dateStr, "-", "")
}
