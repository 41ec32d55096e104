package workflow

import (
	"fmt"
	"time"
)

// Step is one entry in the system-wide production step catalog. Step keys
// are stable identifiers (printing, cutting, lamination); step_order fixes
// the canonical sequence every resolved step list is sorted by.
type Step struct {
	id        uint
	key       string
	name      string
	stepOrder int
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewStep(key, name string, stepOrder int) (*Step, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("step key is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("step name is required")
	}

	now := time.Now().UTC()
	return &Step{
		key:       key,
		name:      name,
		stepOrder: stepOrder,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStep(id uint, key, name string, stepOrder int, isActive bool, createdAt, updatedAt time.Time) (*Step, error) {
	if id == 0 {
		return nil, fmt.Errorf("step ID cannot be zero")
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("step key is required")
	}
	return &Step{
		id:        id,
		key:       key,
		name:      name,
		stepOrder: stepOrder,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Step) ID() uint             { return s.id }
func (s *Step) Key() string          { return s.key }
func (s *Step) Name() string         { return s.name }
func (s *Step) StepOrder() int       { return s.stepOrder }
func (s *Step) IsActive() bool       { return s.isActive }
func (s *Step) CreatedAt() time.Time { return s.createdAt }
func (s *Step) UpdatedAt() time.Time { return s.updatedAt }

func (s *Step) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("step ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("step ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Step) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("step name cannot be empty")
	}
	s.name = name
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *Step) Reorder(stepOrder int) {
	s.stepOrder = stepOrder
	s.updatedAt = time.Now().UTC()
}

func (s *Step) Deactivate() {
	s.isActive = false
	s.updatedAt = time.Now().UTC()
}

func (s *Step) Activate() {
	s.isActive = true
	s.updatedAt = time.Now().UTC()
}
