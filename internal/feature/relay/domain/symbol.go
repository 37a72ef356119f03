// Package domain holds the relay feature's domain types and rules.
package domain

import (
	"fmt"
	"strings"
)

// symbolOrder is the closed set of supported symbol codes. A symbol's
// registry identifier is its position here plus one, so the list order is
// part of the storage contract and must never be rearranged.
var symbolOrder = [...]string{"BTC", "ETH", "XRP", "LTC"}

// SymbolID resolves a bare symbol code to its registry identifier (1-based).
// Codes outside the enumeration fail with ErrInvalidSymbol.
func SymbolID(code string) (int, error) {
	for i, s := range symbolOrder {
		if s == code {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, code)
}

// SymbolIDFromCompound resolves a provider compound identifier of the form
// "<exchange>_<kind>_<CODE>_..." (e.g. "BITSTAMP_SPOT_BTC_USD") by taking
// the third underscore-separated segment.
func SymbolIDFromCompound(compound string) (int, error) {
	parts := strings.Split(compound, "_")
	if len(parts) < 3 {
		return 0, fmt.Errorf("%w: malformed compound id %q", ErrInvalidSymbol, compound)
	}
	return SymbolID(parts[2])
}

// Symbols returns the supported symbol codes in registry order.
func Symbols() []string {
	out := make([]string, len(symbolOrder))
	copy(out, symbolOrder[:])
	return out
}
