// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/BlackZ36/Meibeichi/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with local development defaults.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "meibeichi")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "meibeichi")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanProducts removes test products by code. Call in t.Cleanup().
func cleanProducts(t *testing.T, db *sql.DB, codes ...string) {
	t.Helper()
	for _, code := range codes {
		db.Exec("DELETE FROM products WHERE code = $1", code)
	}
}

// cleanCategories removes test categories by value. Call in t.Cleanup().
func cleanCategories(t *testing.T, db *sql.DB, values ...string) {
	t.Helper()
	for _, value := range values {
		db.Exec("DELETE FROM categories WHERE value = $1", value)
	}
}

// cleanChats removes test chats by title. Call in t.Cleanup().
func cleanChats(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM chats WHERE title = $1", title)
	}
}
