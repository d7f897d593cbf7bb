package consolidating

import "github.com/freshkart/sales-etl/internal/domain"

// ActiveCustomerCities restringe o referencial aos clientes ativos e devolve
// o mapeamento customer_id → cidade usado no enriquecimento. Função pura:
// entrada vazia produz mapa vazio, sem erro.
func ActiveCustomerCities(customers []domain.Customer) map[string]string {
	cities := make(map[string]string, len(customers))

	for _, customer := range customers {
		if customer.IsActive {
			cities[customer.CustomerID] = customer.City
		}
	}

	return cities
}

// ApplyBusinessRules aplica os filtros de regra de negócio às linhas de
// item normalizadas:
//
//	(a) vendas não pagas são descartadas inteiras;
//	(b) vendas de clientes ausentes do referencial ativo são descartadas inteiras;
//	(c) itens com preço unitário negativo vão para a sequência de rejeitados,
//	    item a item — os demais itens da mesma venda seguem normalmente.
//
// Os descartes de venda (a, b) acontecem antes da rejeição de item (c):
// itens de vendas descartadas não aparecem nem entre os mantidos nem entre
// os rejeitados.
func ApplyBusinessRules(items []domain.ItemRow, cities map[string]string) ([]domain.ItemRow, []domain.RejectedItem) {
	kept := make([]domain.ItemRow, 0, len(items))
	rejected := make([]domain.RejectedItem, 0)

	for _, item := range items {
		if item.PaymentStatus != domain.PaymentStatusPaid {
			continue
		}
		if _, ok := cities[item.CustomerID]; !ok {
			continue
		}

		if item.UnitPrice < 0 {
			rejected = append(rejected, domain.RejectedItem{
				ItemRow: item,
				Reason:  domain.RejectReasonNegativePrice,
			})
			continue
		}

		kept = append(kept, item)
	}

	return kept, rejected
}
