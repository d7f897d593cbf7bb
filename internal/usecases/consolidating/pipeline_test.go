package consolidating

import (
	"testing"

	"github.com/freshkart/sales-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOrders(t *testing.T) {
	t.Run("Achata os itens e repete os campos da venda", func(t *testing.T) {
		orders := []domain.Order{
			{
				OrderID:       "O1",
				CustomerID:    "C1",
				Channel:       "web",
				CreatedAt:     "2025-06-01T09:30:00",
				PaymentStatus: domain.PaymentStatusPaid,
				Items: []domain.OrderItem{
					{SKU: "SKU-1", UnitPrice: 10.0, Quantity: 2},
					{SKU: "SKU-2", UnitPrice: 5.5, Quantity: 1},
				},
			},
		}

		items := NormalizeOrders(orders)
		require.Len(t, items, 2)
		assert.Equal(t, "O1", items[0].OrderID)
		assert.Equal(t, "C1", items[1].CustomerID)
		assert.Equal(t, "SKU-2", items[1].SKU)
		assert.Equal(t, domain.PaymentStatusPaid, items[1].PaymentStatus)
	})

	t.Run("Duplicata descarta a segunda ocorrência inteira", func(t *testing.T) {
		orders := []domain.Order{
			{
				OrderID:       "O1",
				PaymentStatus: domain.PaymentStatusPaid,
				Items:         []domain.OrderItem{{SKU: "SKU-1", UnitPrice: 10.0, Quantity: 1}},
			},
			{
				OrderID:       "O1",
				PaymentStatus: domain.PaymentStatusPaid,
				Items: []domain.OrderItem{
					{SKU: "SKU-9", UnitPrice: 99.0, Quantity: 9},
				},
			},
			{
				OrderID:       "O2",
				PaymentStatus: domain.PaymentStatusPaid,
				Items:         []domain.OrderItem{{SKU: "SKU-2", UnitPrice: 3.0, Quantity: 1}},
			},
		}

		items := NormalizeOrders(orders)
		require.Len(t, items, 2)
		assert.Equal(t, "SKU-1", items[0].SKU)
		assert.Equal(t, "O2", items[1].OrderID)
	})

	t.Run("Lote vazio produz sequência vazia", func(t *testing.T) {
		assert.Empty(t, NormalizeOrders(nil))
	})
}

func TestActiveCustomerCities(t *testing.T) {
	customers := []domain.Customer{
		{CustomerID: "C1", City: "Paris", IsActive: true},
		{CustomerID: "C2", City: "Lyon", IsActive: false},
		{CustomerID: "C3", City: "Paris", IsActive: true},
	}

	cities := ActiveCustomerCities(customers)
	assert.Equal(t, map[string]string{"C1": "Paris", "C3": "Paris"}, cities)
}

func TestApplyBusinessRules(t *testing.T) {
	cities := map[string]string{"C1": "Paris", "C3": "Lyon"}

	t.Run("Descarta não pagas e clientes fora do referencial", func(t *testing.T) {
		items := []domain.ItemRow{
			{OrderID: "O1", CustomerID: "C1", PaymentStatus: domain.PaymentStatusPaid, UnitPrice: 10, Quantity: 1},
			{OrderID: "O2", CustomerID: "C1", PaymentStatus: "pending", UnitPrice: 5, Quantity: 1},
			{OrderID: "O3", CustomerID: "C2", PaymentStatus: domain.PaymentStatusPaid, UnitPrice: 5, Quantity: 1},
			{OrderID: "O4", CustomerID: "C9", PaymentStatus: domain.PaymentStatusPaid, UnitPrice: 5, Quantity: 1},
		}

		kept, rejected := ApplyBusinessRules(items, cities)
		require.Len(t, kept, 1)
		assert.Equal(t, "O1", kept[0].OrderID)
		assert.Empty(t, rejected)
	})

	t.Run("Preço negativo rejeita o item, não a venda", func(t *testing.T) {
		items := []domain.ItemRow{
			{OrderID: "O1", CustomerID: "C1", PaymentStatus: domain.PaymentStatusPaid, SKU: "SKU-1", UnitPrice: -2.5, Quantity: 1},
			{OrderID: "O1", CustomerID: "C1", PaymentStatus: domain.PaymentStatusPaid, SKU: "SKU-2", UnitPrice: 8.0, Quantity: 2},
		}

		kept, rejected := ApplyBusinessRules(items, cities)
		require.Len(t, kept, 1)
		assert.Equal(t, "SKU-2", kept[0].SKU)

		require.Len(t, rejected, 1)
		assert.Equal(t, "SKU-1", rejected[0].SKU)
		assert.Equal(t, domain.RejectReasonNegativePrice, rejected[0].Reason)
	})

	t.Run("Item negativo de venda descartada não aparece em lugar nenhum", func(t *testing.T) {
		items := []domain.ItemRow{
			{OrderID: "O2", CustomerID: "C1", PaymentStatus: "refused", SKU: "SKU-1", UnitPrice: -1.0, Quantity: 1},
			{OrderID: "O3", CustomerID: "C9", PaymentStatus: domain.PaymentStatusPaid, SKU: "SKU-2", UnitPrice: -1.0, Quantity: 1},
		}

		kept, rejected := ApplyBusinessRules(items, cities)
		assert.Empty(t, kept)
		assert.Empty(t, rejected)
	})
}

func TestAggregateRefunds(t *testing.T) {
	refunds := []domain.Refund{
		{RefundID: "R1", OrderID: "O1", Amount: -6.76},
		{RefundID: "R2", OrderID: "O1", Amount: -1.24},
		{RefundID: "R3", OrderID: "O9", Amount: -5.00},
	}
	valid := map[string]struct{}{"O1": {}, "O2": {}}

	byOrder := AggregateRefunds(refunds, valid)

	require.Len(t, byOrder, 1)
	assert.InDelta(t, -8.0, byOrder["O1"], 1e-9)
	assert.NotContains(t, byOrder, "O9")
	assert.NotContains(t, byOrder, "O2")
}

func TestComputeOrderRevenue(t *testing.T) {
	cities := map[string]string{"C1": "Paris", "C2": "Lyon"}

	t.Run("Soma itens e aplica reembolso", func(t *testing.T) {
		items := []domain.ItemRow{
			{OrderID: "O1", CustomerID: "C1", Channel: "web", UnitPrice: 388.4, Quantity: 2},
			{OrderID: "O2", CustomerID: "C2", Channel: "app", UnitPrice: 10.0, Quantity: 1},
		}
		refunds := map[string]float64{"O1": -6.76}

		orders := ComputeOrderRevenue("2025-06-01", items, cities, refunds)
		require.Len(t, orders, 2)

		first := orders[0]
		assert.Equal(t, "O1", first.OrderID)
		assert.Equal(t, "2025-06-01", first.Date)
		assert.Equal(t, "Paris", first.City)
		assert.Equal(t, 2, first.ItemsSold)
		assert.InDelta(t, 776.8, first.GrossRevenue, 1e-9)
		assert.InDelta(t, -6.76, first.RefundsAmount, 1e-9)
		assert.InDelta(t, 770.04, first.NetRevenue, 1e-9)

		second := orders[1]
		assert.InDelta(t, 10.0, second.GrossRevenue, 1e-9)
		assert.InDelta(t, 0.0, second.RefundsAmount, 1e-9)
		assert.InDelta(t, 10.0, second.NetRevenue, 1e-9)
	})

	t.Run("Reembolso maior que o bruto deixa a líquida negativa", func(t *testing.T) {
		items := []domain.ItemRow{
			{OrderID: "O1", CustomerID: "C1", Channel: "web", UnitPrice: 5.0, Quantity: 1},
		}
		refunds := map[string]float64{"O1": -12.5}

		orders := ComputeOrderRevenue("2025-06-01", items, cities, refunds)
		require.Len(t, orders, 1)
		assert.InDelta(t, -7.5, orders[0].NetRevenue, 1e-9)
	})

	t.Run("Preserva a ordem de primeira aparição", func(t *testing.T) {
		items := []domain.ItemRow{
			{OrderID: "O2", CustomerID: "C2", UnitPrice: 1, Quantity: 1},
			{OrderID: "O1", CustomerID: "C1", UnitPrice: 1, Quantity: 1},
			{OrderID: "O2", CustomerID: "C2", UnitPrice: 1, Quantity: 1},
		}

		orders := ComputeOrderRevenue("2025-06-01", items, cities, nil)
		require.Len(t, orders, 2)
		assert.Equal(t, "O2", orders[0].OrderID)
		assert.Equal(t, 2, orders[0].ItemsSold)
		assert.Equal(t, "O1", orders[1].OrderID)
	})
}

func TestAggregateDaily(t *testing.T) {
	t.Run("Agrupa por cidade e canal com clientes distintos", func(t *testing.T) {
		orders := []*domain.OrderRevenue{
			{OrderID: "O1", CustomerID: "C1", City: "Paris", Channel: "web", ItemsSold: 2, GrossRevenue: 20.0, NetRevenue: 20.0},
			{OrderID: "O2", CustomerID: "C1", City: "Paris", Channel: "web", ItemsSold: 1, GrossRevenue: 5.0, RefundsAmount: -1.0, NetRevenue: 4.0},
			{OrderID: "O3", CustomerID: "C2", City: "Lyon", Channel: "app", ItemsSold: 3, GrossRevenue: 9.0, NetRevenue: 9.0},
		}

		summaries := AggregateDaily("2025-06-01", orders)
		require.Len(t, summaries, 2)

		lyon := summaries[0]
		assert.Equal(t, "Lyon", lyon.City)
		assert.Equal(t, "app", lyon.Channel)
		assert.Equal(t, 1, lyon.OrdersCount)
		assert.Equal(t, 1, lyon.UniqueCustomers)

		paris := summaries[1]
		assert.Equal(t, "Paris", paris.City)
		assert.Equal(t, 2, paris.OrdersCount)
		assert.Equal(t, 1, paris.UniqueCustomers)
		assert.Equal(t, 3, paris.ItemsSold)
		assert.InDelta(t, 25.0, paris.GrossRevenue, 1e-9)
		assert.InDelta(t, -1.0, paris.Refunds, 1e-9)
		assert.InDelta(t, 24.0, paris.NetRevenue, 1e-9)
	})

	t.Run("Ordena por cidade e depois canal", func(t *testing.T) {
		orders := []*domain.OrderRevenue{
			{OrderID: "O1", CustomerID: "C1", City: "Paris", Channel: "web"},
			{OrderID: "O2", CustomerID: "C2", City: "Paris", Channel: "app"},
			{OrderID: "O3", CustomerID: "C3", City: "Lyon", Channel: "web"},
		}

		summaries := AggregateDaily("2025-06-01", orders)
		require.Len(t, summaries, 3)
		assert.Equal(t, "Lyon", summaries[0].City)
		assert.Equal(t, "app", summaries[1].Channel)
		assert.Equal(t, "web", summaries[2].Channel)
	})

	t.Run("Combinações sem vendas são omitidas", func(t *testing.T) {
		summaries := AggregateDaily("2025-06-01", nil)
		assert.Empty(t, summaries)
	})
}
