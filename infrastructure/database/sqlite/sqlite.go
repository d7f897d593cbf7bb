package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

type Conn interface {
	Queryer
	Begin(context.Context) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

// NewConnection abre (ou cria) o banco cumulativo no caminho informado e
// garante o esquema. Use ":memory:" para um banco volátil em testes.
func NewConnection(ctx context.Context, path string) (*Connection, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o banco de dados")
	}

	// Uma conexão única: o pipeline tem um só escritor e bancos ":memory:"
	// existem por conexão
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao testar conexão com o banco de dados")
	}

	// WAL melhora leituras concorrentes da API enquanto o pipeline escreve
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "erro ao habilitar WAL")
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "erro ao criar esquema do banco")
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn dentro de uma transação com rollback
// garantido em erro ou panic. É a unidade de trabalho da persistência do
// pipeline: uma execução grava tudo ou nada.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			return err
		}
		return err
	}

	return tx.Commit()
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS orders_clean (
			order_id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			city TEXT NOT NULL,
			channel TEXT NOT NULL,
			created_at TEXT NOT NULL,
			items_sold INTEGER NOT NULL,
			gross_revenue REAL NOT NULL,
			refunds_amount REAL NOT NULL,
			net_revenue REAL NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_clean_date ON orders_clean(date)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_clean_customer ON orders_clean(customer_id)`,

		`CREATE TABLE IF NOT EXISTS daily_city_sales (
			date TEXT NOT NULL,
			city TEXT NOT NULL,
			channel TEXT NOT NULL,
			orders_count INTEGER NOT NULL,
			unique_customers INTEGER NOT NULL,
			items_sold INTEGER NOT NULL,
			gross_revenue_eur REAL NOT NULL,
			refunds_eur REAL NOT NULL,
			net_revenue_eur REAL NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (date, city, channel)
		)`,

		`CREATE TABLE IF NOT EXISTS pipeline_runs (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			orders_kept INTEGER NOT NULL,
			items_rejected INTEGER NOT NULL,
			gross_revenue REAL NOT NULL,
			net_revenue REAL NOT NULL,
			started_at DATETIME NOT NULL,
			finished_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pipeline_runs_date ON pipeline_runs(date)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
