package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor on top of the pgx pool. Services
// open one transaction per balance-mutating operation (tap settlement,
// top-up credit, registration completion) and take their row locks inside it.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor wrapping the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a transaction on a dedicated pool connection. Repository
// methods that take a pgx.Tx run on it; everything else runs pool-level on
// other connections and must not be called against rows the transaction has
// locked.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
