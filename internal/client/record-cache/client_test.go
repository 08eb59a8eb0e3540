package record_cache

import (
	"context"
	"testing"
	"time"

	"twitch_stream_watcher/internal/models"
	"twitch_stream_watcher/internal/testsupport/redisstub"
)

func startCache(t *testing.T) (*RecordCache, *redisstub.Server) {
	t.Helper()
	srv, err := redisstub.Start(redisstub.Options{Password: "secret"})
	if err != nil {
		t.Fatalf("failed to start redis stub: %v", err)
	}
	t.Cleanup(func() {
		_ = srv.Close()
	})

	cache := NewRecordCache(srv.Addr(), "secret")
	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache, srv
}

func TestRecordCacheRoundTrip(t *testing.T) {
	cache, _ := startCache(t)
	ctx := context.Background()

	if err := cache.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	records := map[string]models.Record{
		"alice": {"id": "123", "login": "alice", "display_name": "Alice"},
		"bob":   {"id": "456", "login": "bob"},
	}
	updatedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := cache.Put(ctx, UsersNamespace, records, updatedAt); err != nil {
		t.Fatalf("put: %v", err)
	}

	loaded, err := cache.Records(ctx, UsersNamespace)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d records, want 2", len(loaded))
	}
	if loaded["alice"].DisplayName() != "Alice" {
		t.Fatalf("alice display_name = %q", loaded["alice"].DisplayName())
	}

	lastUpdate, err := cache.LastUpdate(ctx, UsersNamespace)
	if err != nil {
		t.Fatalf("last update: %v", err)
	}
	if !lastUpdate.Equal(updatedAt) {
		t.Fatalf("last update = %v, want %v", lastUpdate, updatedAt)
	}
}

func TestRecordCacheEmptyNamespace(t *testing.T) {
	cache, _ := startCache(t)
	ctx := context.Background()

	records, err := cache.Records(ctx, GamesNamespace)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}

	lastUpdate, err := cache.LastUpdate(ctx, GamesNamespace)
	if err != nil {
		t.Fatalf("last update: %v", err)
	}
	if !lastUpdate.IsZero() {
		t.Fatalf("last update = %v, want zero", lastUpdate)
	}
}

func TestRecordCacheNamespacesAreIndependent(t *testing.T) {
	cache, _ := startCache(t)
	ctx := context.Background()

	users := map[string]models.Record{"alice": {"id": "1"}}
	games := map[string]models.Record{"509658": {"name": "Just Chatting"}}

	if err := cache.Put(ctx, UsersNamespace, users, time.Now()); err != nil {
		t.Fatalf("put users: %v", err)
	}
	if err := cache.Put(ctx, GamesNamespace, games, time.Now()); err != nil {
		t.Fatalf("put games: %v", err)
	}

	loaded, err := cache.Records(ctx, GamesNamespace)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if _, ok := loaded["alice"]; ok {
		t.Fatal("user record leaked into games namespace")
	}
	if loaded["509658"].Name() != "Just Chatting" {
		t.Fatalf("game name = %q", loaded["509658"].Name())
	}
}
