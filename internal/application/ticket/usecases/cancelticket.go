package usecases

import (
	"context"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type CancelTicketCommand struct {
	TicketID uint
	Reason   string
	Actor    common.Actor
}

// CancelTicketUseCase cancels a ticket from any non-terminal state. Only
// admins and front desk may cancel; production and design roles report
// problems upward instead.
type CancelTicketUseCase struct {
	ticketRepo ticket.Repository
	renderer   remarkSanitizer
	txManager  TransactionManager
	publisher  events.EventPublisher
	logger     logger.Interface
}

type remarkSanitizer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

func NewCancelTicketUseCase(
	ticketRepo ticket.Repository,
	renderer remarkSanitizer,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CancelTicketUseCase {
	return &CancelTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CancelTicketUseCase) Execute(ctx context.Context, cmd CancelTicketCommand) error {
	uc.logger.Infow("executing cancel ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Actor.Role.IsAdmin() && !cmd.Actor.Role.IsFrontDesk() {
		return errors.NewForbiddenError("only admin or front desk may cancel tickets")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if t == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		oldStatus := t.Status()
		if err := t.Cancel(); err != nil {
			return errors.NewConflictError(err.Error())
		}

		if len(cmd.Reason) > 0 && uc.renderer != nil {
			sanitized, err := uc.renderer.ToHTMLSanitized(cmd.Reason)
			if err != nil {
				return errors.NewValidationError("invalid cancellation reason", err.Error())
			}
			t.SetRemarks(sanitized)
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		if uc.publisher != nil {
			if err := uc.publisher.Publish(ticket.NewStatusChangedEvent(t, oldStatus)); err != nil {
				uc.logger.Warnw("failed to publish ticket cancelled event", "error", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to cancel ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket cancelled", "ticket_id", cmd.TicketID)
	return nil
}
