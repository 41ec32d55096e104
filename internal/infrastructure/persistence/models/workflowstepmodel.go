package models

import "time"

type WorkflowStepModel struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex;size:50;not null"`
	Name      string `gorm:"size:100;not null"`
	StepOrder int    `gorm:"not null;index"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WorkflowStepModel) TableName() string {
	return "workflow_steps"
}
