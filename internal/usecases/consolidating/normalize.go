// Package consolidating implementa o pipeline de consolidação diária de
// vendas: normalização do lote, filtros de regra de negócio, agregação de
// reembolsos, cálculo de receita e agregados por cidade e canal.
package consolidating

import "github.com/freshkart/sales-etl/internal/domain"

// NormalizeOrders achata o lote de vendas em uma linha por item, com os
// campos da venda repetidos em cada linha (desnormalização para as junções
// seguintes).
//
// Deduplicação: varrendo o lote na ordem do arquivo, se um order_id se
// repete, todos os itens da segunda ocorrência em diante são descartados —
// a primeira ocorrência vence, sempre, independente de timestamp.
func NormalizeOrders(orders []domain.Order) []domain.ItemRow {
	seen := make(map[string]struct{}, len(orders))
	items := make([]domain.ItemRow, 0, len(orders))

	for _, order := range orders {
		if _, ok := seen[order.OrderID]; ok {
			continue
		}
		seen[order.OrderID] = struct{}{}

		for _, item := range order.Items {
			items = append(items, domain.ItemRow{
				OrderID:       order.OrderID,
				CustomerID:    order.CustomerID,
				Channel:       order.Channel,
				CreatedAt:     order.CreatedAt,
				PaymentStatus: order.PaymentStatus,
				SKU:           item.SKU,
				UnitPrice:     item.UnitPrice,
				Quantity:      item.Quantity,
			})
		}
	}

	return items
}
