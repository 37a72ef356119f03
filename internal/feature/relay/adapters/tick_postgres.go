// Package adapters provides storage implementations for the relay feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"relay_backend/internal/feature/relay/domain/entity"
	"relay_backend/internal/feature/relay/usecase"
)

type tickPostgres struct {
	db *gorm.DB
}

var _ usecase.TickRepository = (*tickPostgres)(nil)

// NewTickRepository creates a gorm-backed TickRepository.
func NewTickRepository(db *gorm.DB) *tickPostgres {
	return &tickPostgres{db: db}
}

// TickModel maps ticks onto the symbol_data table. The timestamp is stored
// as the provider string minus its Z suffix so a round trip through the
// database reproduces it byte for byte.
type TickModel struct {
	ID          uint    `gorm:"primaryKey"`
	SymbolID    int     `gorm:"column:symbol_id;not null;index"`
	TimeCoinAPI string  `gorm:"column:time_coinapi;size:32;not null"`
	TakerSide   string  `gorm:"column:taker_side;size:8;not null"`
	Price       float64 `gorm:"not null"`
	Size        float64 `gorm:"not null"`
}

func (TickModel) TableName() string {
	return "symbol_data"
}

func toModel(e entity.Tick) TickModel {
	return TickModel{
		SymbolID:    e.SymbolID,
		TimeCoinAPI: e.Time,
		TakerSide:   e.TakerSide,
		Price:       e.Price,
		Size:        e.Size,
	}
}

// InsertBatch writes all ticks inside one transaction, in input order.
// All-or-nothing: any statement failure rolls the whole batch back.
func (r *tickPostgres) InsertBatch(ctx context.Context, ticks []entity.Tick) error {
	if len(ticks) == 0 {
		return nil
	}
	ms := make([]TickModel, 0, len(ticks))
	for _, e := range ticks {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&ms).Error
	})
}

// FindBySymbolID returns all rows for one symbol identifier, oldest first.
func (r *tickPostgres) FindBySymbolID(ctx context.Context, symbolID int) ([]entity.Tick, error) {
	var rows []TickModel
	err := r.db.WithContext(ctx).
		Where("symbol_id = ?", symbolID).
		Order("time_coinapi ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.Tick, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Tick{
			SymbolID:  m.SymbolID,
			Time:      m.TimeCoinAPI,
			TakerSide: m.TakerSide,
			Price:     m.Price,
			Size:      m.Size,
		})
	}
	return out, nil
}
