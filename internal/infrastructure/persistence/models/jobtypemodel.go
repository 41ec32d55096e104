package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// JobTypeModel stores the pricing child collections and per-step workflow
// configuration as JSON columns. They are read and written whole with the
// aggregate, never queried into.
type JobTypeModel struct {
	ID             uint            `gorm:"primaryKey"`
	Name           string          `gorm:"size:100;not null"`
	Code           string          `gorm:"uniqueIndex;size:30;not null"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IncentivePrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	PriceTiers     datatypes.JSON `gorm:"type:json"`
	SizeRates      datatypes.JSON `gorm:"type:json"`
	PromoRules     datatypes.JSON `gorm:"type:json"`
	WorkflowSteps  datatypes.JSON `gorm:"type:json"`
	Requirements   datatypes.JSON `gorm:"type:json"`
	AvgConsumption datatypes.JSON `gorm:"type:json"`

	IsActive  bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (JobTypeModel) TableName() string {
	return "job_types"
}
