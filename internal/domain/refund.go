package domain

// Refund é uma linha do livro de reembolsos (refunds.csv). O valor é um
// crédito: negativo ou zero. O order_id pode ser órfão (venda desconhecida).
type Refund struct {
	RefundID  string
	OrderID   string
	Amount    float64
	Reason    string
	CreatedAt string
}
