// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"luckshop/internal/cache"
	"luckshop/internal/database"
	"luckshop/internal/middleware"
	"luckshop/internal/models"
	"luckshop/internal/session"
	"luckshop/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "luckshop")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "luckshop")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "gallery:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB       *sql.DB
	Valkey   *redis.Client
	Sessions *session.Store
	Docs     *store.DocumentStore
	Heat     *store.HeatStore
	Admins   *store.AdminStore
	Cache    *cache.GalleryCache
	Admin    *Admin
	Auth     *Auth
	Public   *Public
}

// newTestEnv creates a complete test environment with all handler
// dependencies. Object storage is left nil; asset handlers respond 503.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	docs := store.NewDocumentStore(db)
	heat := store.NewHeatStore(db)
	admins := store.NewAdminStore(db)
	galleryCache := cache.NewGalleryCache(vk, 1*time.Minute)

	return &testEnv{
		DB:       db,
		Valkey:   vk,
		Sessions: sessions,
		Docs:     docs,
		Heat:     heat,
		Admins:   admins,
		Cache:    galleryCache,
		Admin:    NewAdmin(docs, heat, galleryCache, nil),
		Auth:     NewAuth(sessions, admins),
		Public:   NewPublic(docs, heat, galleryCache),
	}
}

// seedCatalog saves a small two-category document as the current head and
// registers cleanup of every document row written during the test.
func seedCatalog(t *testing.T, env *testEnv) models.Document {
	t.Helper()

	doc := models.Document{
		UpdatedAt: "2026/01/10",
		Groups: []models.Group{
			{
				Category:    "rings",
				Description: "rings.",
				UpdatedAt:   "2026/01/10",
				Images: []models.Product{
					{ID: "r1", Name: "Gold Band", UploadedAt: "2026/01/09", CoverURL: "/img/r1.jpg", Status: models.ProductStatusOn},
					{ID: "r2", Name: "Silver Band", UploadedAt: "2026/01/08", Status: models.ProductStatusOff},
				},
			},
			{
				Category:    "necklaces",
				Description: "necklaces.",
				UpdatedAt:   "2026/01/07",
				Images: []models.Product{
					{ID: "n1", Name: "Jade Pendant", UploadedAt: "2026/01/06", Description: "A *fine* pendant.", Status: models.ProductStatusOn},
				},
			},
		},
	}

	if _, err := env.Docs.Save(doc); err != nil {
		t.Fatalf("seed document: %v", err)
	}
	cleanDocuments(t, env.DB)
	env.Cache.InvalidateAll(context.Background())
	return doc
}

// cleanDocuments removes every catalog revision. Call in test setup; the
// cleanup runs when the test finishes.
func cleanDocuments(t *testing.T, db *sql.DB) {
	t.Helper()
	t.Cleanup(func() {
		db.Exec("DELETE FROM gallery_documents")
	})
}

// cleanHeat removes test heat counters by product id.
func cleanHeat(t *testing.T, db *sql.DB, productIDs ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, id := range productIDs {
			db.Exec("DELETE FROM product_heat WHERE product_id = $1", id)
		}
	})
}

// resetAdmin restores the seeded admin account state after auth tests.
func resetAdmin(t *testing.T, db *sql.DB) {
	t.Helper()
	t.Cleanup(func() {
		db.Exec("DELETE FROM admin_account")
	})
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeResponse parses a JSON response body into a generic map.
func decodeResponse(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, body)
	}
	return out
}
