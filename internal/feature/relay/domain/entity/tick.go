// Package entity defines the domain entities for the relay feature.
package entity

// RawTick is a single trade record as delivered by the provider.
// The symbol is encoded inside the compound SymbolID string
// (e.g. "BITSTAMP_SPOT_BTC_USD") and TimeCoinAPI carries a trailing "Z".
// RawTicks live only for the duration of one ingestion cycle.
type RawTick struct {
	SymbolID    string  `json:"symbol_id"`
	TimeCoinAPI string  `json:"time_coinapi"`
	TakerSide   string  `json:"taker_side"`
	Price       float64 `json:"price"`
	Size        float64 `json:"size"`
}

// Tick is the persisted form of a RawTick: the symbol resolved to its
// registry identifier and the timestamp stripped of the "Z" suffix.
type Tick struct {
	SymbolID  int
	Time      string
	TakerSide string
	Price     float64
	Size      float64
}
