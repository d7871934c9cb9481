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

	"hostel-admin/internal/domain/user"
	"hostel-admin/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

// CreateTestUser inserts an active staff user whose password is DefaultPassword.
func CreateTestUser(t *testing.T, db DBLike, email string, role user.Role) uuid.UUID {
	t.Helper()

	hashOnce.Do(func() {
		h, err := password.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		defaultHash = h
	})

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO staff_users (id, email, password_hash, role, full_name, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, defaultHash, string(role), "Test "+string(role))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM staff_users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, code string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO rooms (id, code, name, room_type, capacity_adults, capacity_children, base_rate, currency, sort_order)
		VALUES ($1, $2, $3, 'matrimonial', 2, 1, 90.00, 'PEN', 0)`,
		roomID, code, "Room "+code)
	require.NoError(t, err)
	return roomID
}

func CreateTestGuest(t *testing.T, db DBLike, fullName, email string) uuid.UUID {
	t.Helper()

	guestID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO guests (id, full_name, email) VALUES ($1, $2, $3)`,
		guestID, fullName, email)
	require.NoError(t, err)
	return guestID
}

func CreateTestCompany(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO companies (id, name, discount_percent) VALUES ($1, $2, 10)
		ON CONFLICT (name) DO NOTHING`, companyID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", name).Scan(&companyID))
	}
	return companyID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
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
