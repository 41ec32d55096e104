package usecases

import (
	"context"

	"rosecraft/internal/application/ticket/dto"
	"rosecraft/internal/domain/ticket"
)

// TransactionManager runs a function inside one storage transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SequenceResolver yields the workflow step sequence governing a ticket.
type SequenceResolver interface {
	ResolveForTicket(ctx context.Context, t *ticket.Ticket) ([]string, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type RecalculatePricingExecutor interface {
	Execute(ctx context.Context, cmd RecalculatePricingCommand) (*RecalculatePricingResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type CancelTicketExecutor interface {
	Execute(ctx context.Context, cmd CancelTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
