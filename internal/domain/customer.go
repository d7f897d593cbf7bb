package domain

// Customer representa uma linha do referencial de clientes (customers.csv).
// É a fonte de verdade para o enriquecimento de cidade e para a
// elegibilidade das vendas.
type Customer struct {
	CustomerID string
	FirstName  string
	LastName   string
	Email      string
	City       string
	IsActive   bool
}
