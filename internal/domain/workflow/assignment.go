package workflow

import (
	"fmt"
	"time"
)

// Assignment links a production worker to one step of one ticket. Only
// active assignments grant step access; deactivation keeps the row for
// incentive history.
type Assignment struct {
	id         uint
	ticketID   uint
	stepKey    string
	workerID   uint
	assignedBy *uint
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAssignment(ticketID uint, stepKey string, workerID uint, assignedBy *uint) (*Assignment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(stepKey) == 0 {
		return nil, fmt.Errorf("step key is required")
	}
	if workerID == 0 {
		return nil, fmt.Errorf("worker ID is required")
	}

	now := time.Now().UTC()
	return &Assignment{
		ticketID:   ticketID,
		stepKey:    stepKey,
		workerID:   workerID,
		assignedBy: assignedBy,
		isActive:   true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAssignment(
	id, ticketID uint,
	stepKey string,
	workerID uint,
	assignedBy *uint,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	return &Assignment{
		id:         id,
		ticketID:   ticketID,
		stepKey:    stepKey,
		workerID:   workerID,
		assignedBy: assignedBy,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (a *Assignment) ID() uint             { return a.id }
func (a *Assignment) TicketID() uint       { return a.ticketID }
func (a *Assignment) StepKey() string      { return a.stepKey }
func (a *Assignment) WorkerID() uint       { return a.workerID }
func (a *Assignment) AssignedBy() *uint    { return a.assignedBy }
func (a *Assignment) IsActive() bool       { return a.isActive }
func (a *Assignment) CreatedAt() time.Time { return a.createdAt }
func (a *Assignment) UpdatedAt() time.Time { return a.updatedAt }

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Assignment) Deactivate() {
	a.isActive = false
	a.updatedAt = time.Now().UTC()
}

func (a *Assignment) Reactivate() {
	a.isActive = true
	a.updatedAt = time.Now().UTC()
}
