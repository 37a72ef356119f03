package cursor

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps cursors in Redis so the high-water mark survives process
// restarts. Keys are namespaced per symbol and carry no expiry.
type RedisStore struct {
	rdb       *redis.Client
	namespace string
}

// NewRedisStore creates a Redis-backed cursor store. If namespace is empty
// it defaults to "cursor".
func NewRedisStore(rdb *redis.Client, namespace string) *RedisStore {
	if namespace == "" {
		namespace = "cursor"
	}
	return &RedisStore{rdb: rdb, namespace: namespace}
}

func (s *RedisStore) key(symbol string) string {
	return fmt.Sprintf("%s:%s", s.namespace, symbol)
}

// Current returns the stored cursor for symbol, or Epoch when none exists.
func (s *RedisStore) Current(ctx context.Context, symbol string) (string, error) {
	ts, err := s.rdb.Get(ctx, s.key(symbol)).Result()
	if errors.Is(err, redis.Nil) {
		return Epoch, nil
	}
	if err != nil {
		return "", fmt.Errorf("read cursor for %s: %w", symbol, err)
	}
	return ts, nil
}

// Advance moves the symbol's cursor to highestSeen + 1 second, keeping the
// stored value monotonic.
func (s *RedisStore) Advance(ctx context.Context, symbol, highestSeen string) error {
	next, err := NextStart(highestSeen)
	if err != nil {
		return err
	}
	cur, err := s.Current(ctx, symbol)
	if err != nil {
		return err
	}
	if next <= cur {
		return nil
	}
	if err := s.rdb.Set(ctx, s.key(symbol), next, 0).Err(); err != nil {
		return fmt.Errorf("write cursor for %s: %w", symbol, err)
	}
	return nil
}
