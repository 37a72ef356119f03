package di

import (
	"relay_backend/internal/feature/relay/cursor"
	"relay_backend/internal/feature/relay/usecase"

	"github.com/redis/go-redis/v9"
)

// NewCursorStore creates a CursorStore implementation.
// If Redis is available, it returns a Redis-backed implementation so the
// ingest cursor survives restarts. Otherwise, it falls back to memory and
// ingestion resumes from the epoch after a restart.
func NewCursorStore(rdb *redis.Client) usecase.CursorStore {
	if rdb != nil {
		return cursor.NewRedisStore(rdb, "cursor")
	}
	return cursor.NewMemory()
}
