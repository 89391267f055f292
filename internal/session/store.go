package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store holds session fields server-side, keyed by session id. A
// missing field reads back as the empty string, not an error.
type Store interface {
	Get(ctx context.Context, sid, field string) (string, error)
	Set(ctx context.Context, sid, field, value string, ttl time.Duration) error
	Delete(ctx context.Context, sid string, fields ...string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func storeKey(sid, field string) string {
	return "session:" + sid + ":" + field
}

func (s *RedisStore) Get(ctx context.Context, sid, field string) (string, error) {
	value, err := s.client.Get(ctx, storeKey(sid, field)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, sid, field, value string, ttl time.Duration) error {
	return s.client.Set(ctx, storeKey(sid, field), value, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sid string, fields ...string) error {
	keys := make([]string, 0, len(fields))
	for _, field := range fields {
		keys = append(keys, storeKey(sid, field))
	}
	return s.client.Del(ctx, keys...).Err()
}

// MemoryStore is the dev fallback when Redis is not configured, and
// doubles as the store used in tests. Entries expire lazily on read.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, sid, field string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[storeKey(sid, field)]
	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(s.entries, storeKey(sid, field))
		return "", nil
	}
	return entry.value, nil
}

func (s *MemoryStore) Set(_ context.Context, sid, field, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.entries[storeKey(sid, field)] = entry
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string, fields ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, field := range fields {
		delete(s.entries, storeKey(sid, field))
	}
	return nil
}
