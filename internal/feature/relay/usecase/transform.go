package usecase

import (
	"fmt"
	"strings"

	"relay_backend/internal/feature/relay/domain"
	"relay_backend/internal/feature/relay/domain/entity"
)

// transform converts a provider batch into persistable ticks, preserving
// input order, and returns the highest stripped timestamp seen. The running
// maximum is seeded with the current cursor so a batch of only old records
// can never pull the cursor backwards.
//
// An empty batch fails with ErrNoIncrementalData: with nothing newly seen
// there is nothing to confirm, and the cursor must not move.
func transform(raw []entity.RawTick, since string) ([]entity.Tick, string, error) {
	if len(raw) == 0 {
		return nil, "", domain.ErrNoIncrementalData
	}

	highest := since
	ticks := make([]entity.Tick, 0, len(raw))
	for _, r := range raw {
		id, err := domain.SymbolIDFromCompound(r.SymbolID)
		if err != nil {
			return nil, "", err
		}
		// Drop the trailing Z; equal-precision ISO-8601 strings then
		// compare lexicographically in chronological order.
		ts := strings.TrimSuffix(r.TimeCoinAPI, "Z")
		ticks = append(ticks, entity.Tick{
			SymbolID:  id,
			Time:      ts,
			TakerSide: r.TakerSide,
			Price:     r.Price,
			Size:      r.Size,
		})
		if ts > highest {
			highest = ts
		}
	}
	return ticks, highest, nil
}

// wrapUpstream tags provider-side failures so the transport layer can map
// them without inspecting messages.
func wrapUpstream(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}

// wrapPersistence tags storage-side failures.
func wrapPersistence(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
}
