package models

import "time"

type StepAssignmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index:idx_assignment_ticket_step"`
	StepKey    string `gorm:"size:50;not null;index:idx_assignment_ticket_step"`
	WorkerID   uint   `gorm:"not null;index"`
	AssignedBy *uint
	IsActive   bool `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (StepAssignmentModel) TableName() string {
	return "ticket_step_assignments"
}
