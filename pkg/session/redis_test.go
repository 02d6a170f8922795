package session

import (
	"context"
	"reflect"
	"testing"

	"github.com/leaguedesk/airbase-client/pkg/model"
	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a test Redis client.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use a separate DB for tests
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test DB: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := NewRedisStore(setupTestRedis(t), 0)
	ctx := context.Background()

	name := "Harry Kane"
	team := "Bayern"
	goals := 36
	want := model.Collection{
		model.Scorer{Name: &name, Team: &team, Goals: &goals},
		model.Scorer{Name: &name},
	}

	if err := store.Set(ctx, "user@example.com", model.KindScorer, want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := store.Get(ctx, "user@example.com", model.KindScorer)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestRedisStore_MissWhenAbsent(t *testing.T) {
	store := NewRedisStore(setupTestRedis(t), 0)

	_, ok, err := store.Get(context.Background(), "user@example.com", model.KindScorer)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected cache miss for absent entry")
	}
}

func TestRedisStore_DeleteSession(t *testing.T) {
	store := NewRedisStore(setupTestRedis(t), 0)
	ctx := context.Background()

	if err := store.Set(ctx, "alice@example.com", model.KindScorer, testCollection()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, "alice@example.com", model.KindTeamWeekScorer, model.Collection{}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, "bob@example.com", model.KindScorer, testCollection()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := store.DeleteSession(ctx, "alice@example.com"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "alice@example.com", model.KindScorer); ok {
		t.Error("Alice's scorer entry should be gone")
	}
	if _, ok, _ := store.Get(ctx, "alice@example.com", model.KindTeamWeekScorer); ok {
		t.Error("Alice's team week entry should be gone")
	}
	if _, ok, _ := store.Get(ctx, "bob@example.com", model.KindScorer); !ok {
		t.Error("Bob's entry should survive")
	}
}
