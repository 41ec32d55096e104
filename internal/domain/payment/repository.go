package payment

import "context"

type Repository interface {
	Save(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	// ListByTicket returns the surviving (non-deleted) rows for a ticket in
	// received order.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Payment, error)
	// Delete soft-deletes a row.
	Delete(ctx context.Context, id uint) error
}
