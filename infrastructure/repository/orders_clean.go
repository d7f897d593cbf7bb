package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/freshkart/sales-etl/infrastructure/database/sqlite"
	"github.com/freshkart/sales-etl/internal/domain"
)

const ordersCleanTable = "orders_clean"

type OrdersCleanRepository interface {
	Upsert(q sqlite.Queryer, order *domain.OrderRevenue) error
	GetByDate(date string) ([]*domain.OrderRevenue, error)
	CountByDate(date string) (int, error)
}

type ordersCleanRepository struct {
	conn *sqlite.Connection
}

func NewOrdersCleanRepository(conn *sqlite.Connection) OrdersCleanRepository {
	return &ordersCleanRepository{
		conn: conn,
	}
}

// Upsert grava uma venda limpa. A chave natural é order_id: reexecutar o
// pipeline para a mesma data substitui a linha em vez de acumular.
func (r *ordersCleanRepository) Upsert(q sqlite.Queryer, order *domain.OrderRevenue) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(ordersCleanTable).
		Columns(
			"order_id", "date", "customer_id", "city", "channel", "created_at",
			"items_sold", "gross_revenue", "refunds_amount", "net_revenue",
		).
		Values(
			order.OrderID,
			order.Date,
			order.CustomerID,
			order.City,
			order.Channel,
			order.CreatedAt,
			order.ItemsSold,
			order.GrossRevenue,
			order.RefundsAmount,
			order.NetRevenue,
		).
		Suffix(`
			ON CONFLICT (order_id) DO UPDATE SET
				date = excluded.date,
				customer_id = excluded.customer_id,
				city = excluded.city,
				channel = excluded.channel,
				created_at = excluded.created_at,
				items_sold = excluded.items_sold,
				gross_revenue = excluded.gross_revenue,
				refunds_amount = excluded.refunds_amount,
				net_revenue = excluded.net_revenue,
				updated_at = CURRENT_TIMESTAMP
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *ordersCleanRepository) GetByDate(date string) ([]*domain.OrderRevenue, error) {
	query, args, err := squirrel.
		Select(
			"order_id", "date", "customer_id", "city", "channel", "created_at",
			"items_sold", "gross_revenue", "refunds_amount", "net_revenue",
		).
		From(ordersCleanTable).
		Where(squirrel.Eq{"date": date}).
		OrderBy("order_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.OrderRevenue, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear orders_clean: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *ordersCleanRepository) CountByDate(date string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(ordersCleanTable).
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar orders_clean: %w", err)
	}

	return count, nil
}

func (r *ordersCleanRepository) scanOrder(rows *sql.Rows) (*domain.OrderRevenue, error) {
	order := &domain.OrderRevenue{}

	err := rows.Scan(
		&order.OrderID,
		&order.Date,
		&order.CustomerID,
		&order.City,
		&order.Channel,
		&order.CreatedAt,
		&order.ItemsSold,
		&order.GrossRevenue,
		&order.RefundsAmount,
		&order.NetRevenue,
	)
	if err != nil {
		return nil, err
	}

	return order, nil
}
