package sources

import (
	"fmt"
	"path/filepath"

	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/sirupsen/logrus"
)

// Sources agrupa as três origens tipadas de uma data de negócio.
type Sources struct {
	Customers []domain.Customer
	Orders    []domain.Order
	Refunds   []domain.Refund
}

// Loader carrega as três origens para uma data. Qualquer origem ausente ou
// corrompida falha o carregamento inteiro (fail-fast).
type Loader interface {
	Load(date string) (*Sources, error)
}

type FileLoader struct {
	inputDir string
}

func NewFileLoader(inputDir string) *FileLoader {
	return &FileLoader{
		inputDir: inputDir,
	}
}

func (l *FileLoader) Load(date string) (*Sources, error) {
	customers, err := LoadCustomers(filepath.Join(l.inputDir, "customers.csv"))
	if err != nil {
		return nil, err
	}

	refunds, err := LoadRefunds(filepath.Join(l.inputDir, "refunds.csv"))
	if err != nil {
		return nil, err
	}

	orders, err := LoadOrders(filepath.Join(l.inputDir, fmt.Sprintf("orders_%s.json", date)))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"date":      date,
		"customers": len(customers),
		"orders":    len(orders),
		"refunds":   len(refunds),
	}).Info("Origens carregadas com sucesso")

	return &Sources{
		Customers: customers,
		Orders:    orders,
		Refunds:   refunds,
	}, nil
}
