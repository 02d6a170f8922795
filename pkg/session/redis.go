package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leaguedesk/airbase-client/pkg/model"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by Redis, for deployments where several
// processes should share one session cache. Records are serialized through
// their kind's codec, so anything stored round-trips the same contract the
// fetch path uses.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore creates a Redis-backed store. A zero ttl means entries
// never expire on their own and live until DeleteSession.
func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Name identifies the backend in metrics.
func (s *RedisStore) Name() string { return "redis" }

// wireEntry is the Redis representation of one cache entry. Rows hold the
// codec-encoded field mappings of each record in collection order.
type wireEntry struct {
	Kind      string           `json:"kind"`
	CreatedAt time.Time        `json:"created_at"`
	Rows      []map[string]any `json:"rows"`
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, session string, kind model.Kind) (model.Collection, bool, error) {
	data, err := s.redis.Get(ctx, s.key(session, kind)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var entry wireEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("unmarshal cache entry: %w", err)
	}

	desc, err := model.Kind(entry.Kind).Descriptor()
	if err != nil {
		return nil, false, err
	}

	collection := make(model.Collection, 0, len(entry.Rows))
	for _, row := range entry.Rows {
		rec, err := desc.Codec.Decode(row)
		if err != nil {
			return nil, false, err
		}
		collection = append(collection, rec)
	}

	return collection, true, nil
}

// Set implements Store. The entry and its key are written atomically via a
// pipeline so DeleteSession never misses a concurrently added entry.
func (s *RedisStore) Set(ctx context.Context, session string, kind model.Kind, collection model.Collection) error {
	desc, err := kind.Descriptor()
	if err != nil {
		return err
	}

	entry := wireEntry{
		Kind:      kind.String(),
		CreatedAt: time.Now(),
		Rows:      make([]map[string]any, 0, len(collection)),
	}
	for _, rec := range collection {
		row, err := desc.Codec.Encode(rec)
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		entry.Rows = append(entry.Rows, row)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	key := s.key(session, kind)
	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, key, data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(session), key)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.indexKey(session), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// DeleteSession implements Store.
func (s *RedisStore) DeleteSession(ctx context.Context, session string) error {
	indexKey := s.indexKey(session)

	keys, err := s.redis.SMembers(ctx, indexKey).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("redis smembers: %w", err)
	}

	keys = append(keys, indexKey)
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

func (s *RedisStore) key(session string, kind model.Kind) string {
	return "airbase:cache:" + session + ":" + kind.String()
}

func (s *RedisStore) indexKey(session string) string {
	return "airbase:session:" + session
}
