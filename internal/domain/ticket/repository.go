package ticket

import (
	"context"

	vo "rosecraft/internal/domain/ticket/valueobjects"
)

// ListFilter narrows List queries. Nil fields are ignored.
type ListFilter struct {
	Status             *vo.TicketStatus
	PaymentStatus      *vo.PaymentStatus
	OrderBranchID      *uint
	ProductionBranchID *uint
	CustomerID         *uint
	Limit              int
	Offset             int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	// ExistsByNumber includes soft-deleted tickets so numbers are never reused.
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)
	Delete(ctx context.Context, id uint) error
}
