package sources

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/freshkart/sales-etl/internal/domain"
)

var refundsHeader = []string{"refund_id", "order_id", "amount", "reason", "created_at"}

// LoadRefunds carrega o livro completo de reembolsos (refunds.csv). O
// arquivo é histórico, não particionado por data; o filtro por vendas
// conhecidas acontece na agregação, não aqui.
//
// Cabeçalho esperado:
//
//	refund_id,order_id,amount,reason,created_at
func LoadRefunds(path string) ([]domain.Refund, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.MissingSourceError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &domain.SourceFormatError{File: path, Reason: fmt.Sprintf("cabeçalho ilegível: %v", err)}
	}
	if err := checkHeader(header, refundsHeader); err != nil {
		return nil, &domain.SourceFormatError{File: path, Reason: err.Error()}
	}

	var refunds []domain.Refund
	lineNum := 1

	for {
		lineNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &domain.SourceFormatError{File: path, Record: lineNum, Reason: err.Error()}
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, &domain.SourceFormatError{File: path, Record: lineNum, Reason: fmt.Sprintf("amount inválido: %q", row[2])}
		}

		refunds = append(refunds, domain.Refund{
			RefundID:  strings.TrimSpace(row[0]),
			OrderID:   strings.TrimSpace(row[1]),
			Amount:    amount,
			Reason:    strings.TrimSpace(row[3]),
			CreatedAt: strings.TrimSpace(row[4]),
		})
	}

	return refunds, nil
}
