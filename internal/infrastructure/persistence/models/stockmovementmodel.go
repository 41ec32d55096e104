package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementModel rows are append-only; there is no update path.
type StockMovementModel struct {
	ID            uint            `gorm:"primaryKey"`
	StockItemID   uint            `gorm:"not null;index"`
	MovementType  string          `gorm:"size:20;not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	StockBefore   decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	StockAfter    decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	ReferenceKind string          `gorm:"size:30;not null;index:idx_movement_reference"`
	ReferenceID   uint            `gorm:"not null;index:idx_movement_reference"`
	PerformedBy   *uint
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"index"`
}

func (StockMovementModel) TableName() string {
	return "stock_movements"
}
