// Package pgx implements catalog.Store on PostgreSQL with pgvector for
// embedding similarity search.
package pgx

import (
	"context"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
	Begin(ctx context.Context) (pgxv5.Tx, error)
}

// CatalogDBStore implements the catalog.Store interface on PostgreSQL.
// Embeddings live in a pgvector column on the assets table; scenario stage
// rules live in a child table ordered by position.
type CatalogDBStore struct {
	conn pgxIConn
}

// NewCatalogDBStore creates a store using an existing database connection
// or pool.
func NewCatalogDBStore(conn pgxIConn) *CatalogDBStore {
	return &CatalogDBStore{conn: conn}
}
