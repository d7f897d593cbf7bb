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

var customersHeader = []string{"customer_id", "first_name", "last_name", "email", "city", "is_active"}

// LoadCustomers carrega o referencial de clientes (customers.csv).
//
// Cabeçalho esperado:
//
//	customer_id,first_name,last_name,email,city,is_active
func LoadCustomers(path string) ([]domain.Customer, error) {
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
	if err := checkHeader(header, customersHeader); err != nil {
		return nil, &domain.SourceFormatError{File: path, Reason: err.Error()}
	}

	var customers []domain.Customer
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

		customerID := strings.TrimSpace(row[0])
		if customerID == "" {
			return nil, &domain.SourceFormatError{File: path, Record: lineNum, Reason: "customer_id vazio"}
		}

		isActive, err := strconv.ParseBool(strings.TrimSpace(row[5]))
		if err != nil {
			return nil, &domain.SourceFormatError{File: path, Record: lineNum, Reason: fmt.Sprintf("is_active inválido: %q", row[5])}
		}

		customers = append(customers, domain.Customer{
			CustomerID: customerID,
			FirstName:  strings.TrimSpace(row[1]),
			LastName:   strings.TrimSpace(row[2]),
			Email:      strings.TrimSpace(row[3]),
			City:       strings.TrimSpace(row[4]),
			IsActive:   isActive,
		})
	}

	return customers, nil
}

func checkHeader(got, want []string) error {
	if len(got) < len(want) {
		return fmt.Errorf("esperadas %d colunas, recebidas %d", len(want), len(got))
	}

	for i, col := range want {
		if strings.TrimSpace(got[i]) != col {
			return fmt.Errorf("coluna %d deveria ser %q, recebida %q", i+1, col, got[i])
		}
	}

	return nil
}
