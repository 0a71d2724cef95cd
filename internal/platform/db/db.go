package db

import (
	"context"
	"database/sql"
)

// Executor is satisfied by both *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type TxManager interface {
	// RunInTx executes fn within a database transaction. The context passed
	// to fn carries the transaction; it is committed when fn returns nil and
	// rolled back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Conn returns the transaction stored in ctx, or fallback when there is none.
//
//nolint:ireturn // callers only need the query methods.
func Conn(ctx context.Context, fallback Executor) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return fallback
}
