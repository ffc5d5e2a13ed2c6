// handler_test.go provides a shared HTTP test harness for the API
// integration tests. Tests are skipped if PostgreSQL or Redis is not
// available.
package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/BlackZ36/Meibeichi/internal/auth"
	"github.com/BlackZ36/Meibeichi/internal/database"
	"github.com/BlackZ36/Meibeichi/internal/handlers"
	"github.com/BlackZ36/Meibeichi/internal/router"
	"github.com/BlackZ36/Meibeichi/internal/session"
	"github.com/BlackZ36/Meibeichi/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "meibeichi")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "meibeichi")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// env is a running API server against the test database, with a client
// that carries cookies between requests.
type env struct {
	db     *sql.DB
	server *httptest.Server
	client *http.Client
}

// newEnv spins up the full router over the test database and a Redis
// session store. Skips the test when either backend is unreachable.
func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)
	t.Cleanup(func() { db.Close() })

	redisClient := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_HOST", "localhost") + ":" + envOr("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       15, // keep test keys away from live sessions
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		redisClient.Close()
		t.Skipf("skipping integration test: Redis not reachable: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	sessions := session.NewStore(redisClient, false)
	accounts, err := auth.New(map[string]string{"admin": "admin", "meibeichi": "meibeichi"})
	if err != nil {
		t.Fatalf("failed to build accounts: %v", err)
	}

	api := handlers.New(
		sessions, accounts,
		store.NewProductStore(db),
		store.NewCategoryStore(db),
		store.NewChatStore(db),
		nil,
	)
	server := httptest.NewServer(router.New(sessions, api))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}

	return &env{
		db:     db,
		server: server,
		client: &http.Client{Jar: jar},
	}
}

// do sends a JSON request to the test server and returns the response.
func (e *env) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, e.server.URL+path, buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// login signs in as admin and stores the session cookie in the jar.
func (e *env) login(t *testing.T) {
	t.Helper()

	resp := e.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "admin",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

// decodeInto reads a JSON response body into v and closes it.
func decodeInto(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}
