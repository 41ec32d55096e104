package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockItemModel struct {
	ID              uint            `gorm:"primaryKey"`
	Name            string          `gorm:"size:100;not null"`
	SKU             string          `gorm:"uniqueIndex;size:50;not null"`
	Unit            string          `gorm:"size:20"`
	MeasurementType string          `gorm:"size:20;not null"`
	CurrentStock    decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0"`
	MinimumStock    decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0"`
	MaximumStock    decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	IsActive        bool            `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (StockItemModel) TableName() string {
	return "stock_items"
}
