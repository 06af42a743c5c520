//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// RowQuerier is satisfied by both the e2e pool and a transaction, so fixtures
// can seed inside a test-owned tx as well.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ RowQuerier = (*pgxpool.Pool)(nil)
	_ RowQuerier = (pgx.Tx)(nil)
)

// insertID runs an INSERT ... RETURNING id.
func insertID(t *testing.T, db RowQuerier, sql string, args ...any) int64 {
	t.Helper()

	var id int64
	require.NoError(t, db.QueryRow(context.Background(), sql, args...).Scan(&id), "fixture insert failed")
	return id
}
