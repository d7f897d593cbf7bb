package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/freshkart/sales-etl/infrastructure/database/sqlite"
	"github.com/freshkart/sales-etl/internal/domain"
)

const dailyCitySalesTable = "daily_city_sales"

type DailyCitySalesRepository interface {
	Upsert(q sqlite.Queryer, row *domain.DailyCitySales) error
	GetByDate(date string) ([]*domain.DailyCitySales, error)
	CountByDate(date string) (int, error)
}

type dailyCitySalesRepository struct {
	conn *sqlite.Connection
}

func NewDailyCitySalesRepository(conn *sqlite.Connection) DailyCitySalesRepository {
	return &dailyCitySalesRepository{
		conn: conn,
	}
}

// Upsert grava um agregado diário. A chave natural é (date, city, channel):
// linhas existentes da mesma partição são substituídas, nunca duplicadas.
func (r *dailyCitySalesRepository) Upsert(q sqlite.Queryer, row *domain.DailyCitySales) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(dailyCitySalesTable).
		Columns(
			"date", "city", "channel", "orders_count", "unique_customers",
			"items_sold", "gross_revenue_eur", "refunds_eur", "net_revenue_eur",
		).
		Values(
			row.Date,
			row.City,
			row.Channel,
			row.OrdersCount,
			row.UniqueCustomers,
			row.ItemsSold,
			row.GrossRevenue,
			row.Refunds,
			row.NetRevenue,
		).
		Suffix(`
			ON CONFLICT (date, city, channel) DO UPDATE SET
				orders_count = excluded.orders_count,
				unique_customers = excluded.unique_customers,
				items_sold = excluded.items_sold,
				gross_revenue_eur = excluded.gross_revenue_eur,
				refunds_eur = excluded.refunds_eur,
				net_revenue_eur = excluded.net_revenue_eur,
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

func (r *dailyCitySalesRepository) GetByDate(date string) ([]*domain.DailyCitySales, error) {
	query, args, err := squirrel.
		Select(
			"date", "city", "channel", "orders_count", "unique_customers",
			"items_sold", "gross_revenue_eur", "refunds_eur", "net_revenue_eur",
		).
		From(dailyCitySalesTable).
		Where(squirrel.Eq{"date": date}).
		OrderBy("city ASC", "channel ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.DailyCitySales, 0)
	for rows.Next() {
		summary, err := r.scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear daily_city_sales: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *dailyCitySalesRepository) CountByDate(date string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(dailyCitySalesTable).
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar daily_city_sales: %w", err)
	}

	return count, nil
}

func (r *dailyCitySalesRepository) scanSummary(rows *sql.Rows) (*domain.DailyCitySales, error) {
	summary := &domain.DailyCitySales{}

	err := rows.Scan(
		&summary.Date,
		&summary.City,
		&summary.Channel,
		&summary.OrdersCount,
		&summary.UniqueCustomers,
		&summary.ItemsSold,
		&summary.GrossRevenue,
		&summary.Refunds,
		&summary.NetRevenue,
	)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
