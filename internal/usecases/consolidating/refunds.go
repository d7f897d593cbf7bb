package consolidating

import "github.com/freshkart/sales-etl/internal/domain"

// AggregateRefunds filtra o livro de reembolsos às vendas conhecidas e soma
// os valores por order_id. Os valores são créditos (≤ 0); vendas sem
// reembolso simplesmente não aparecem no mapa e valem 0 na junção.
//
// validOrderIDs é o conjunto de vendas sobreviventes aos filtros de regra
// de negócio: reembolsos de vendas descartadas, duplicadas ou órfãs são
// ignorados, já que nunca chegariam à agregação.
func AggregateRefunds(refunds []domain.Refund, validOrderIDs map[string]struct{}) map[string]float64 {
	byOrder := make(map[string]float64)

	for _, refund := range refunds {
		if _, ok := validOrderIDs[refund.OrderID]; !ok {
			continue
		}
		byOrder[refund.OrderID] += refund.Amount
	}

	return byOrder
}
