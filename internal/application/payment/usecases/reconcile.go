package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"rosecraft/internal/domain/payment"
	"rosecraft/internal/domain/ticket"
)

// ReconcileOutcome is the derived payment state after a ledger mutation.
type ReconcileOutcome struct {
	TicketID      uint
	AmountPaid    decimal.Decimal
	PaymentStatus string
}

// reconcileTicket recomputes the ticket's paid total and status from the
// full surviving ledger and writes the projection back. Every payment
// mutation calls this inside the same transaction that holds the ticket
// row lock, so concurrent mutations serialize.
func reconcileTicket(
	ctx context.Context,
	t *ticket.Ticket,
	paymentRepo payment.Repository,
	ticketRepo ticket.Repository,
) (*ReconcileOutcome, error) {
	rows, err := paymentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	result := payment.Reconcile(rows, t.TotalAmount(), t.PaymentStatus())
	if err := t.ApplyReconciliation(result.AmountPaid, result.Status); err != nil {
		return nil, err
	}
	if err := ticketRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	return &ReconcileOutcome{
		TicketID:      t.ID(),
		AmountPaid:    result.AmountPaid,
		PaymentStatus: result.Status.String(),
	}, nil
}
