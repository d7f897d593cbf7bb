package sources

import (
	"fmt"
	"os"

	"github.com/freshkart/sales-etl/internal/domain"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadOrders carrega o lote diário de vendas (orders_<date>.json): um array
// de objetos com os itens aninhados. JSON ilegível ou registros sem campos
// obrigatórios abortam o carregamento — o pipeline nunca processa um dia
// parcial.
func LoadOrders(path string) ([]domain.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.MissingSourceError{Path: path}
		}
		return nil, err
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, &domain.SourceFormatError{File: path, Reason: fmt.Sprintf("JSON inválido: %v", err)}
	}

	for i, order := range orders {
		if order.OrderID == "" {
			return nil, &domain.SourceFormatError{File: path, Record: i + 1, Reason: "order_id vazio"}
		}
		if order.CustomerID == "" {
			return nil, &domain.SourceFormatError{File: path, Record: i + 1, Reason: fmt.Sprintf("customer_id vazio na venda %s", order.OrderID)}
		}
		for _, item := range order.Items {
			if item.Quantity <= 0 {
				return nil, &domain.SourceFormatError{
					File:   path,
					Record: i + 1,
					Reason: fmt.Sprintf("quantity deve ser positiva na venda %s, recebida %d", order.OrderID, item.Quantity),
				}
			}
		}
	}

	return orders, nil
}
