package usecase

import (
	"context"

	"relay_backend/internal/feature/relay/domain"
	"relay_backend/internal/feature/relay/domain/entity"
)

// QueryUsecase serves read-back of persisted ticks for one symbol.
type QueryUsecase struct {
	ticks TickRepository
}

// NewQueryUsecase creates a QueryUsecase with the given repository.
func NewQueryUsecase(ticks TickRepository) *QueryUsecase {
	return &QueryUsecase{ticks: ticks}
}

// RelayOut returns every persisted tick whose symbol identifier matches the
// requested symbol. No pagination or filtering beyond symbol equality.
func (u *QueryUsecase) RelayOut(ctx context.Context, symbol string) ([]entity.Tick, error) {
	id, err := domain.SymbolID(symbol)
	if err != nil {
		return nil, err
	}
	ticks, err := u.ticks.FindBySymbolID(ctx, id)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return ticks, nil
}
