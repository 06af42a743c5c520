//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateTestMedia(t *testing.T, db RowQuerier, name, mimeType string) int64 {
	t.Helper()
	return insertID(t, db,
		"INSERT INTO media (uuid, name, mimetype) VALUES ($1, $2, $3) RETURNING id",
		uuid.New(), name, mimeType)
}

func CreateTestMerchant(t *testing.T, db RowQuerier, name string, logoID int64) int64 {
	t.Helper()
	return insertID(t, db,
		"INSERT INTO merchants (name, logo_id) VALUES ($1, $2) RETURNING id",
		name, logoID)
}

func CreateTestItem(t *testing.T, db RowQuerier, merchantID int64, name string, mediaID, price int64) int64 {
	t.Helper()
	return insertID(t, db,
		"INSERT INTO items (merchant_id, name, media_id, price, currency) VALUES ($1, $2, $3, $4, 'SGD') RETURNING id",
		merchantID, name, mediaID, price)
}

// CreateTestPost inserts a post with an explicit date_posted so ordering is deterministic.
// An empty title is stored as NULL.
func CreateTestPost(t *testing.T, db RowQuerier, merchantID, mediaID int64, title string, datePosted time.Time, items ...int64) int64 {
	t.Helper()
	if items == nil {
		items = []int64{}
	}
	return insertID(t, db,
		"INSERT INTO posts (user_id, media_id, title, date_posted, items) VALUES ($1, $2, NULLIF($3, ''), $4, $5) RETURNING id",
		merchantID, mediaID, title, datePosted, items)
}

func CreateTestBoost(t *testing.T, db RowQuerier, postID int64, endTime time.Time) int64 {
	t.Helper()
	return insertID(t, db,
		"INSERT INTO boosts (post_id, end_time) VALUES ($1, $2) RETURNING id",
		postID, endTime)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts their id sequences
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
