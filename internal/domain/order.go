package domain

// PaymentStatus é o status de pagamento de uma venda no lote diário.
type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "paid"
)

// Order é um objeto do lote diário de vendas (orders_<date>.json),
// com os itens aninhados como chegam da plataforma.
type Order struct {
	OrderID       string        `json:"order_id"`
	CustomerID    string        `json:"customer_id"`
	Channel       string        `json:"channel"`
	CreatedAt     string        `json:"created_at"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Items         []OrderItem   `json:"items"`
}

// OrderItem é uma linha de artigo dentro de uma venda.
type OrderItem struct {
	SKU       string  `json:"sku,omitempty"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// ItemRow é a linha de artigo achatada (desnormalizada): carrega os campos
// da venda em cada item para facilitar as junções das etapas seguintes.
type ItemRow struct {
	OrderID       string
	CustomerID    string
	Channel       string
	CreatedAt     string
	PaymentStatus PaymentStatus
	SKU           string
	UnitPrice     float64
	Quantity      int
}

// RejectReasonNegativePrice é o motivo gravado no CSV de rejeitados.
const RejectReasonNegativePrice = "negative unit price"

// RejectedItem é um item excluído da agregação por regra de qualidade de
// dados, exportado para o CSV de rejeitados com o motivo.
type RejectedItem struct {
	ItemRow
	Reason string
}
