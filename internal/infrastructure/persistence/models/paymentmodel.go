package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentModel rows are soft-deleted so the ledger stays auditable.
type PaymentModel struct {
	ID          uint            `gorm:"primaryKey"`
	TicketID    uint            `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentType string          `gorm:"size:20;not null"`
	Allocation  string          `gorm:"size:20;not null"`
	Status      string          `gorm:"size:20;not null;index"`
	Method      string          `gorm:"size:30"`
	ReferenceNo string          `gorm:"size:100"`
	Notes       string          `gorm:"type:text"`

	BalanceBefore decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	BalanceAfter  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	ReceivedBy *uint     `gorm:"index"`
	ReceivedAt time.Time `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PaymentModel) TableName() string {
	return "ticket_payments"
}
