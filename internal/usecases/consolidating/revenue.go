package consolidating

import (
	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/freshkart/sales-etl/pkg/utils"
)

// ComputeOrderRevenue agrega as linhas de item sobreviventes ao nível de
// venda e calcula as receitas:
//
//	gross_revenue = Σ (unit_price × quantity) dos itens da venda
//	net_revenue   = gross_revenue + reembolsos (reembolso ≤ 0)
//
// Sem piso em zero: uma venda cujo reembolso excede o bruto fica com receita
// líquida negativa, por desenho. A data é a data de negócio da execução,
// nunca derivada de created_at. A ordem de saída segue a primeira aparição
// de cada venda no lote, para resultados determinísticos.
func ComputeOrderRevenue(
	date string,
	items []domain.ItemRow,
	cities map[string]string,
	refundsByOrder map[string]float64,
) []*domain.OrderRevenue {
	byOrder := make(map[string]*domain.OrderRevenue, len(items))
	orders := make([]*domain.OrderRevenue, 0, len(items))

	for _, item := range items {
		order, ok := byOrder[item.OrderID]
		if !ok {
			order = &domain.OrderRevenue{
				OrderID:    item.OrderID,
				Date:       date,
				CustomerID: item.CustomerID,
				City:       cities[item.CustomerID],
				Channel:    item.Channel,
				CreatedAt:  item.CreatedAt,
			}
			byOrder[item.OrderID] = order
			orders = append(orders, order)
		}

		order.ItemsSold += item.Quantity
		order.GrossRevenue += item.UnitPrice * float64(item.Quantity)
	}

	for _, order := range orders {
		order.GrossRevenue = utils.RoundWithTwoDecimalPlace(order.GrossRevenue)
		order.RefundsAmount = utils.RoundWithTwoDecimalPlace(refundsByOrder[order.OrderID])
		order.NetRevenue = utils.RoundWithTwoDecimalPlace(order.GrossRevenue + order.RefundsAmount)
	}

	return orders
}
