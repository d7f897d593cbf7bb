package domain

import "time"

// OrderRevenue é o registro por venda após limpeza, enriquecimento e
// cálculo de receita. É o grão mais fino persistido (orders_clean).
type OrderRevenue struct {
	OrderID       string
	Date          string
	CustomerID    string
	City          string
	Channel       string
	CreatedAt     string
	ItemsSold     int
	GrossRevenue  float64
	RefundsAmount float64
	NetRevenue    float64
}

// DailyCitySales é o agregado diário por (data, cidade, canal).
// NetRevenue pode ser negativo quando os reembolsos excedem o bruto.
type DailyCitySales struct {
	Date            string
	City            string
	Channel         string
	OrdersCount     int
	UniqueCustomers int
	ItemsSold       int
	GrossRevenue    float64
	Refunds         float64
	NetRevenue      float64
}

// PipelineRun é o registro de auditoria de uma execução completa do
// pipeline para uma data de negócio.
type PipelineRun struct {
	ID            string
	Date          string
	OrdersKept    int
	ItemsRejected int
	GrossRevenue  float64
	NetRevenue    float64
	StartedAt     time.Time
	FinishedAt    time.Time
}
