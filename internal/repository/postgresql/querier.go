package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/pdks-app/pdks-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction bound to the context if one exists,
// otherwise the pool. Report queries are read-only and normally run
// straight against the pool.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
