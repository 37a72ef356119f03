// Package usecase implements the relay feature's business logic.
package usecase

import (
	"context"
	"log/slog"
	"sync"

	"relay_backend/internal/feature/relay/domain"
	"relay_backend/internal/feature/relay/domain/entity"
	"relay_backend/internal/shared/ratelimiter"
)

// TickProvider fetches raw trade records from the external data provider,
// starting at the given cursor timestamp.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TickProvider interface {
	GetTrades(ctx context.Context, symbol, since string) ([]entity.RawTick, error)
}

// TickRepository persists transformed ticks and reads them back.
type TickRepository interface {
	InsertBatch(ctx context.Context, ticks []entity.Tick) error
	FindBySymbolID(ctx context.Context, symbolID int) ([]entity.Tick, error)
}

// CursorStore tracks the per-symbol ingestion high-water mark.
type CursorStore interface {
	Current(ctx context.Context, symbol string) (string, error)
	Advance(ctx context.Context, symbol, highestSeen string) error
}

// IngestUsecase runs one incremental ingestion cycle per call:
// fetch from the provider at the cursor, transform, persist the whole batch
// in one transaction, then advance the cursor.
type IngestUsecase struct {
	provider    TickProvider
	ticks       TickRepository
	cursor      CursorStore
	rateLimiter ratelimiter.RateLimiterInterface

	// locks serializes cycles per symbol so concurrent requests cannot
	// interleave their read-fetch-persist-advance sequence on one cursor.
	locks map[string]*sync.Mutex
}

// NewIngestUsecase creates an IngestUsecase over the fixed symbol set.
func NewIngestUsecase(provider TickProvider, ticks TickRepository, cursor CursorStore, rl ratelimiter.RateLimiterInterface) *IngestUsecase {
	locks := make(map[string]*sync.Mutex, len(domain.Symbols()))
	for _, s := range domain.Symbols() {
		locks[s] = &sync.Mutex{}
	}
	return &IngestUsecase{provider: provider, ticks: ticks, cursor: cursor, rateLimiter: rl, locks: locks}
}

// RelayIn ingests everything the provider has for symbol since the current
// cursor and returns the number of rows written.
//
// Failure contract: ErrInvalidSymbol for unknown symbols,
// ErrNoIncrementalData when the provider has nothing new (the cursor does
// not move), ErrUpstream for provider failures, ErrPersistence for storage
// failures. The cursor advances only after the batch is durably committed.
func (u *IngestUsecase) RelayIn(ctx context.Context, symbol string) (int, error) {
	if _, err := domain.SymbolID(symbol); err != nil {
		return 0, err
	}

	mu := u.locks[symbol]
	mu.Lock()
	defer mu.Unlock()

	since, err := u.cursor.Current(ctx, symbol)
	if err != nil {
		return 0, wrapPersistence(err)
	}

	u.rateLimiter.WaitIfNeeded()
	raw, err := u.provider.GetTrades(ctx, symbol, since)
	if err != nil {
		return 0, wrapUpstream(err)
	}

	ticks, highest, err := transform(raw, since)
	if err != nil {
		return 0, err
	}

	if err := u.ticks.InsertBatch(ctx, ticks); err != nil {
		return 0, wrapPersistence(err)
	}

	if err := u.cursor.Advance(ctx, symbol, highest); err != nil {
		return 0, err
	}

	slog.Info("relay-in complete", "symbol", symbol, "rows", len(ticks), "since", since)
	return len(ticks), nil
}
