package migrations

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("PLANNER_TEST_POSTGRES_DSN")
	if url == "" {
		t.Skip("PLANNER_TEST_POSTGRES_DSN not set")
	}

	return url
}

func setupTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	dbURL := testDatabaseURL(t)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	if err := db.Ping(); err != nil {
		t.Skipf("test database unreachable: %v", err)
	}

	_, err = db.Exec(`
		DROP TABLE IF EXISTS snack_logs CASCADE;
		DROP TABLE IF EXISTS shopping_details CASCADE;
		DROP TABLE IF EXISTS shopping_logs CASCADE;
		DROP TABLE IF EXISTS menus CASCADE;
		DROP TABLE IF EXISTS meal_sessions CASCADE;
		DROP TABLE IF EXISTS meal_plans CASCADE;
		DROP TABLE IF EXISTS refresh_tokens CASCADE;
		DROP TABLE IF EXISTS user_authentications CASCADE;
		DROP TABLE IF EXISTS users CASCADE;
		DROP TABLE IF EXISTS schema_migrations CASCADE;
	`)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db, dbURL
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1)`,
		table,
	).Scan(&exists)
	require.NoError(t, err)

	return exists
}

func TestUp_CreatesAllTables(t *testing.T) {
	db, dbURL := setupTestDB(t)

	require.NoError(t, Up(dbURL))

	for _, table := range []string{
		"users", "user_authentications", "refresh_tokens",
		"meal_plans", "meal_sessions", "menus",
		"shopping_logs", "shopping_details", "snack_logs",
	} {
		assert.True(t, tableExists(t, db, table), table)
	}

	version, dirty, err := Version(dbURL)
	require.NoError(t, err)
	assert.Equal(t, uint(4), version)
	assert.False(t, dirty)
}

func TestUp_IsIdempotent(t *testing.T) {
	_, dbURL := setupTestDB(t)

	require.NoError(t, Up(dbURL))
	assert.NoError(t, Up(dbURL))
}

func TestDown_RemovesTables(t *testing.T) {
	db, dbURL := setupTestDB(t)

	require.NoError(t, Up(dbURL))
	require.NoError(t, Down(dbURL, 0))

	assert.False(t, tableExists(t, db, "meal_plans"))
	assert.False(t, tableExists(t, db, "users"))
}
