package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TicketModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Number             string `gorm:"uniqueIndex;size:20;not null"`
	CustomerID         uint   `gorm:"not null;index"`
	OrderBranchID      *uint  `gorm:"index"`
	ProductionBranchID *uint  `gorm:"index"`
	JobTypeID          *uint  `gorm:"index"`

	Quantity         int    `gorm:"not null"`
	FreeQuantity     int    `gorm:"not null;default:0"`
	ProducedQuantity int    `gorm:"not null;default:0"`
	SizeValue        string `gorm:"size:50"`
	SizeUnit         string `gorm:"size:20"`

	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Downpayment     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	AmountPaid      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	Status        string `gorm:"size:30;not null;index"`
	PaymentStatus string `gorm:"size:30;not null;index"`
	DesignStatus  string `gorm:"size:20;not null"`

	CurrentWorkflowStep *string        `gorm:"size:50"`
	CustomWorkflowSteps datatypes.JSON `gorm:"type:json"`
	WorkflowStartedAt   *time.Time
	WorkflowCompletedAt *time.Time
	IsWorkflowCompleted bool `gorm:"not null;default:false"`

	Remarks       string `gorm:"type:text"`
	IsOnlineOrder bool   `gorm:"not null;default:false"`
	CreatedBy     *uint  `gorm:"index"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// No foreign key constraints or associations; relationships are
	// managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
