package domain

import "errors"

// Error kinds for relay operations. Transport handlers map these to HTTP
// statuses with errors.Is; nothing below this layer knows about HTTP.
var (
	// ErrInvalidSymbol indicates a symbol outside the supported enumeration.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrNoIncrementalData indicates the provider returned an empty batch.
	// Not a failure: the cursor simply must not move.
	ErrNoIncrementalData = errors.New("no incremental data")

	// ErrMalformedTimestamp indicates a timestamp that is not plain
	// ISO-8601 without timezone, so the cursor cannot advance past it.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrUpstream indicates the provider call failed or returned a payload
	// that could not be decoded.
	ErrUpstream = errors.New("upstream provider failure")

	// ErrPersistence indicates the storage connection or a statement failed.
	ErrPersistence = errors.New("persistence failure")
)
