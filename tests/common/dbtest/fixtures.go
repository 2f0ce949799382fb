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

	"grocery-admin/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by the pool and by a transaction.
type DBLike = db.DBTX

// TestPassword matches testPasswordHash.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

type UserOption func(*userRow)

type userRow struct {
	verified bool
	active   bool
}

func Unverified() UserOption { return func(u *userRow) { u.verified = false } }
func Inactive() UserOption   { return func(u *userRow) { u.active = false } }

func CreateTestUser(t *testing.T, db DBLike, email, role string, opts ...UserOption) uuid.UUID {
	t.Helper()

	row := userRow{verified: true, active: true}
	for _, opt := range opts {
		opt(&row)
	}

	userID := uuid.New()
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, email_verified, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		userID, strings.ToLower(email), "Test "+role, testPasswordHash, role, row.verified, row.active).Scan(&userID)
	require.NoError(t, err)

	return userID
}

// CreateTestWallet stands in for the wallet service that owns balances.
func CreateTestWallet(t *testing.T, db DBLike, ownerType, ownerName, available string, bankVerified bool) uuid.UUID {
	t.Helper()

	ownerID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO wallets (owner_id, owner_type, owner_name, available_balance, bank_verified)
		VALUES ($1, $2, $3, $4::numeric, $5)`,
		ownerID, ownerType, ownerName, available, bankVerified)
	require.NoError(t, err)

	return ownerID
}

// CountJobs counts outbox rows for a topic in the given status.
func CountJobs(t *testing.T, db DBLike, topic, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1 AND status = $2", topic, status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
