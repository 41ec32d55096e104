package models

import "time"

type StepProgressModel struct {
	ID                uint   `gorm:"primaryKey"`
	TicketID          uint   `gorm:"not null;uniqueIndex:idx_progress_ticket_step"`
	StepKey           string `gorm:"size:50;not null;uniqueIndex:idx_progress_ticket_step"`
	CompletedQuantity int    `gorm:"not null;default:0"`
	IsCompleted       bool   `gorm:"not null;default:false"`
	CompletedBy       *uint
	CompletedAt       *time.Time
	Notes             string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (StepProgressModel) TableName() string {
	return "ticket_step_progress"
}
