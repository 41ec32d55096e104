package branch

import (
	"fmt"
	"time"
)

// Branch is a physical shop location that may accept orders and/or perform
// production.
type Branch struct {
	id                  uint
	name                string
	code                string
	canAcceptOrders     bool
	canProduce          bool
	isDefaultProduction bool
	isActive            bool
	createdAt           time.Time
	updatedAt           time.Time
}

func NewBranch(name, code string, canAcceptOrders, canProduce bool) (*Branch, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("branch name is required")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("branch code is required")
	}

	now := time.Now().UTC()
	return &Branch{
		name:            name,
		code:            code,
		canAcceptOrders: canAcceptOrders,
		canProduce:      canProduce,
		isActive:        true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructBranch(
	id uint,
	name, code string,
	canAcceptOrders, canProduce, isDefaultProduction, isActive bool,
	createdAt, updatedAt time.Time,
) (*Branch, error) {
	if id == 0 {
		return nil, fmt.Errorf("branch ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("branch name is required")
	}

	return &Branch{
		id:                  id,
		name:                name,
		code:                code,
		canAcceptOrders:     canAcceptOrders,
		canProduce:          canProduce,
		isDefaultProduction: isDefaultProduction,
		isActive:            isActive,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (b *Branch) ID() uint {
	return b.id
}

func (b *Branch) Name() string {
	return b.name
}

func (b *Branch) Code() string {
	return b.code
}

func (b *Branch) CanAcceptOrders() bool {
	return b.canAcceptOrders
}

func (b *Branch) CanProduce() bool {
	return b.canProduce
}

func (b *Branch) IsDefaultProduction() bool {
	return b.isDefaultProduction
}

func (b *Branch) IsActive() bool {
	return b.isActive
}

func (b *Branch) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Branch) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Branch) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("branch ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("branch ID cannot be zero")
	}
	b.id = id
	return nil
}

// MarkDefaultProduction flags this branch as the fallback production site.
// Only one active branch should carry the flag; the repository enforces that
// by clearing the previous holder in the same transaction.
func (b *Branch) MarkDefaultProduction() error {
	if !b.canProduce {
		return fmt.Errorf("branch %s cannot produce", b.code)
	}
	b.isDefaultProduction = true
	b.updatedAt = time.Now().UTC()
	return nil
}

func (b *Branch) Deactivate() {
	b.isActive = false
	b.updatedAt = time.Now().UTC()
}
