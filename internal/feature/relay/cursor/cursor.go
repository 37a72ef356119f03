// Package cursor tracks the per-symbol ingestion high-water mark: the
// timestamp from which the next incremental provider pull starts.
package cursor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"relay_backend/internal/feature/relay/domain"
)

// Layout is the cursor timestamp format: ISO-8601 without fractional
// seconds or timezone suffix. Timestamps of this precision sort
// lexicographically in chronological order.
const Layout = "2006-01-02T15:04:05"

// Epoch is the historical starting point used before any ingestion has
// happened for a symbol.
const Epoch = "2016-01-01T00:00:00"

// NextStart computes the cursor value that follows highestSeen: the
// sub-second fraction is discarded, then one second is added. A value that
// is not plain ISO-8601 without timezone fails with ErrMalformedTimestamp.
func NextStart(highestSeen string) (string, error) {
	base, _, _ := strings.Cut(highestSeen, ".")
	t, err := time.Parse(Layout, base)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrMalformedTimestamp, highestSeen)
	}
	return t.Add(time.Second).Format(Layout), nil
}

// Memory is an in-process cursor store partitioned by symbol. Every symbol
// starts at Epoch. Safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	starts map[string]string
}

// NewMemory creates an empty in-memory cursor store.
func NewMemory() *Memory {
	return &Memory{starts: make(map[string]string)}
}

// Current returns the timestamp the next pull for symbol should start from.
func (m *Memory) Current(_ context.Context, symbol string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if ts, ok := m.starts[symbol]; ok {
		return ts, nil
	}
	return Epoch, nil
}

// Advance moves the symbol's cursor to highestSeen + 1 second. The cursor
// never rewinds: a computed value at or below the current one is a no-op.
func (m *Memory) Advance(_ context.Context, symbol, highestSeen string) error {
	next, err := NextStart(highestSeen)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.starts[symbol]
	if !ok {
		cur = Epoch
	}
	if next > cur {
		m.starts[symbol] = next
	}
	return nil
}
