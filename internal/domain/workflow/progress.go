package workflow

import (
	"fmt"
	"time"
)

// Progress is the per-ticket, per-step completion record. A step is done
// when completed_quantity covers the ticket's full orderable quantity.
type Progress struct {
	id                uint
	ticketID          uint
	stepKey           string
	completedQuantity int
	isCompleted       bool
	completedBy       *uint
	completedAt       *time.Time
	notes             string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewProgress(ticketID uint, stepKey string) (*Progress, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(stepKey) == 0 {
		return nil, fmt.Errorf("step key is required")
	}

	now := time.Now().UTC()
	return &Progress{
		ticketID:  ticketID,
		stepKey:   stepKey,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProgress(
	id, ticketID uint,
	stepKey string,
	completedQuantity int,
	isCompleted bool,
	completedBy *uint,
	completedAt *time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) (*Progress, error) {
	if id == 0 {
		return nil, fmt.Errorf("progress ID cannot be zero")
	}
	return &Progress{
		id:                id,
		ticketID:          ticketID,
		stepKey:           stepKey,
		completedQuantity: completedQuantity,
		isCompleted:       isCompleted,
		completedBy:       completedBy,
		completedAt:       completedAt,
		notes:             notes,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (p *Progress) ID() uint               { return p.id }
func (p *Progress) TicketID() uint         { return p.ticketID }
func (p *Progress) StepKey() string        { return p.stepKey }
func (p *Progress) CompletedQuantity() int { return p.completedQuantity }
func (p *Progress) IsCompleted() bool      { return p.isCompleted }
func (p *Progress) CompletedBy() *uint     { return p.completedBy }
func (p *Progress) CompletedAt() *time.Time { return p.completedAt }
func (p *Progress) Notes() string          { return p.notes }
func (p *Progress) CreatedAt() time.Time   { return p.createdAt }
func (p *Progress) UpdatedAt() time.Time   { return p.updatedAt }

func (p *Progress) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("progress ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("progress ID cannot be zero")
	}
	p.id = id
	return nil
}

// Record adds completed units and marks the step done once the running
// total covers requiredQuantity. Completion stamps actor and time once;
// later records on a completed step only raise the quantity.
func (p *Progress) Record(quantity, requiredQuantity int, actorID *uint, at time.Time) error {
	if quantity <= 0 {
		return fmt.Errorf("recorded quantity must be positive")
	}
	if requiredQuantity <= 0 {
		return fmt.Errorf("required quantity must be positive")
	}

	p.completedQuantity += quantity
	if p.completedQuantity > requiredQuantity {
		p.completedQuantity = requiredQuantity
	}

	if !p.isCompleted && p.completedQuantity >= requiredQuantity {
		p.isCompleted = true
		p.completedBy = actorID
		completed := at
		p.completedAt = &completed
	}

	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Progress) SetNotes(notes string) {
	p.notes = notes
	p.updatedAt = time.Now().UTC()
}
