package consolidating

import (
	"sort"

	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/freshkart/sales-etl/pkg/utils"
)

// AggregateDaily agrupa as vendas com receita calculada por
// (data, cidade, canal) e computa as métricas do resumo diário. Combinações
// sem vendas são omitidas (sem preenchimento de zeros). A saída é ordenada
// por cidade e depois canal, para um CSV determinístico.
func AggregateDaily(date string, orders []*domain.OrderRevenue) []*domain.DailyCitySales {
	type groupKey struct {
		city    string
		channel string
	}

	groups := make(map[groupKey]*domain.DailyCitySales)
	customers := make(map[groupKey]map[string]struct{})

	for _, order := range orders {
		key := groupKey{city: order.City, channel: order.Channel}

		group, ok := groups[key]
		if !ok {
			group = &domain.DailyCitySales{
				Date:    date,
				City:    order.City,
				Channel: order.Channel,
			}
			groups[key] = group
			customers[key] = make(map[string]struct{})
		}

		group.OrdersCount++
		group.ItemsSold += order.ItemsSold
		group.GrossRevenue += order.GrossRevenue
		group.Refunds += order.RefundsAmount
		group.NetRevenue += order.NetRevenue
		customers[key][order.CustomerID] = struct{}{}
	}

	summaries := make([]*domain.DailyCitySales, 0, len(groups))
	for key, group := range groups {
		group.UniqueCustomers = len(customers[key])
		group.GrossRevenue = utils.RoundWithTwoDecimalPlace(group.GrossRevenue)
		group.Refunds = utils.RoundWithTwoDecimalPlace(group.Refunds)
		group.NetRevenue = utils.RoundWithTwoDecimalPlace(group.NetRevenue)
		summaries = append(summaries, group)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].City != summaries[j].City {
			return summaries[i].City < summaries[j].City
		}
		return summaries[i].Channel < summaries[j].Channel
	})

	return summaries
}
