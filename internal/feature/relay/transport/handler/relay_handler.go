// Package handler provides the HTTP handlers for the relay feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"relay_backend/internal/api"
	"relay_backend/internal/feature/relay/domain"
	"relay_backend/internal/feature/relay/domain/entity"
)

// IngestUsecase runs one incremental ingestion cycle.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type IngestUsecase interface {
	RelayIn(ctx context.Context, symbol string) (int, error)
}

// QueryUsecase reads back all persisted ticks for one symbol.
type QueryUsecase interface {
	RelayOut(ctx context.Context, symbol string) ([]entity.Tick, error)
}

// RelayHandler handles the relay-in and relay-out endpoints.
type RelayHandler struct {
	ingest IngestUsecase
	query  QueryUsecase
}

// NewRelayHandler creates a RelayHandler with the given usecases.
func NewRelayHandler(ingest IngestUsecase, query QueryUsecase) *RelayHandler {
	return &RelayHandler{ingest: ingest, query: query}
}

// TickResponse is the wire form of a persisted tick.
type TickResponse struct {
	SymbolID  int     `json:"symbol_id"`
	Time      string  `json:"time_coinapi"`
	TakerSide string  `json:"taker_side"`
	Price     float64 `json:"price"`
	Size      float64 `json:"size"`
}

// RelayIn handles GET /relay-api/v1/relay-in?Symbol=<CODE>.
// 201 with the processed count, 204 when the provider has nothing new.
func (h *RelayHandler) RelayIn(c *gin.Context) {
	symbol := c.Query("Symbol")

	processed, err := h.ingest.RelayIn(c.Request.Context(), symbol)
	if err != nil {
		respondError(c, err)
		return
	}

	api.Respond(c, http.StatusCreated, "Successful", gin.H{"processed": processed})
}

// RelayOut handles GET /relay-api/v1/relay-out?Symbol=<CODE>.
func (h *RelayHandler) RelayOut(c *gin.Context) {
	symbol := c.Query("Symbol")

	ticks, err := h.query.RelayOut(c.Request.Context(), symbol)
	if err != nil {
		respondError(c, err)
		return
	}

	records := make([]TickResponse, 0, len(ticks))
	for _, t := range ticks {
		records = append(records, TickResponse{
			SymbolID:  t.SymbolID,
			Time:      t.Time,
			TakerSide: t.TakerSide,
			Price:     t.Price,
			Size:      t.Size,
		})
	}
	api.Respond(c, http.StatusOK, "Successful", gin.H{"records": records})
}

// respondError maps tagged error kinds onto the envelope. Client input
// errors stay 400; upstream and storage failures get their own statuses
// instead of being collapsed.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNoIncrementalData):
		api.Respond(c, http.StatusNoContent, "No Content", nil)
	case errors.Is(err, domain.ErrInvalidSymbol):
		api.Respond(c, http.StatusBadRequest, "Bad Request: Invalid Symbol", nil)
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrMalformedTimestamp):
		slog.Error("relay upstream failure", "error", err)
		api.Respond(c, http.StatusBadGateway, "Bad Gateway: Provider Unavailable", nil)
	case errors.Is(err, domain.ErrPersistence):
		slog.Error("relay persistence failure", "error", err)
		api.Respond(c, http.StatusServiceUnavailable, "Service Unavailable: Storage Failed", nil)
	default:
		slog.Error("relay unexpected failure", "error", err)
		api.Respond(c, http.StatusInternalServerError, "Internal Server Error", nil)
	}
}
