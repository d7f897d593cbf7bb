package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/freshkart/sales-etl/infrastructure/database/sqlite"
	"github.com/freshkart/sales-etl/internal/domain"
)

const pipelineRunsTable = "pipeline_runs"

type PipelineRunRepository interface {
	Insert(q sqlite.Queryer, run *domain.PipelineRun) error
	GetByDate(date string) ([]*domain.PipelineRun, error)
}

type pipelineRunRepository struct {
	conn *sqlite.Connection
}

func NewPipelineRunRepository(conn *sqlite.Connection) PipelineRunRepository {
	return &pipelineRunRepository{
		conn: conn,
	}
}

func (r *pipelineRunRepository) Insert(q sqlite.Queryer, run *domain.PipelineRun) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(pipelineRunsTable).
		Columns(
			"id", "date", "orders_kept", "items_rejected",
			"gross_revenue", "net_revenue", "started_at", "finished_at",
		).
		Values(
			run.ID,
			run.Date,
			run.OrdersKept,
			run.ItemsRejected,
			run.GrossRevenue,
			run.NetRevenue,
			run.StartedAt,
			run.FinishedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetByDate lista as execuções de uma data, da mais recente para a mais
// antiga. Reexecuções aparecem como linhas separadas (trilha de auditoria).
func (r *pipelineRunRepository) GetByDate(date string) ([]*domain.PipelineRun, error) {
	query, args, err := squirrel.
		Select(
			"id", "date", "orders_kept", "items_rejected",
			"gross_revenue", "net_revenue", "started_at", "finished_at",
		).
		From(pipelineRunsTable).
		Where(squirrel.Eq{"date": date}).
		OrderBy("finished_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.PipelineRun, 0)
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pipeline_runs: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func (r *pipelineRunRepository) scanRun(rows *sql.Rows) (*domain.PipelineRun, error) {
	run := &domain.PipelineRun{}

	err := rows.Scan(
		&run.ID,
		&run.Date,
		&run.OrdersKept,
		&run.ItemsRejected,
		&run.GrossRevenue,
		&run.NetRevenue,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if err != nil {
		return nil, err
	}

	return run, nil
}
