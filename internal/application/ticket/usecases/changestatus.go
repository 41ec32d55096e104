package usecases

import (
	"context"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/access"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/ticket"
	vo "rosecraft/internal/domain/ticket/valueobjects"
	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	Actor     common.Actor
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
}

type ChangeStatusUseCase struct {
	ticketRepo     ticket.Repository
	assignmentRepo workflow.AssignmentRepository
	sequences      SequenceResolver
	policy         *access.Policy
	txManager      TransactionManager
	publisher      events.EventPublisher
	logger         logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	assignmentRepo workflow.AssignmentRepository,
	sequences SequenceResolver,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		sequences:      sequences,
		policy:         access.NewPolicy(),
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID, "new_status", cmd.NewStatus, "actor_id", cmd.Actor.UserID)

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *ChangeStatusResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if t == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if err := uc.authorize(txCtx, t, cmd.Actor); err != nil {
			return err
		}

		oldStatus := t.Status()
		if err := t.ChangeStatus(newStatus); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		result = &ChangeStatusResult{
			TicketID:  t.ID(),
			OldStatus: oldStatus.String(),
			NewStatus: t.Status().String(),
		}

		if uc.publisher != nil {
			if err := uc.publisher.Publish(ticket.NewStatusChangedEvent(t, oldStatus)); err != nil {
				uc.logger.Warnw("failed to publish status changed event", "error", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return result, nil
}

func (uc *ChangeStatusUseCase) authorize(ctx context.Context, t *ticket.Ticket, actor common.Actor) error {
	policyActor, err := actor.PolicyActor(ctx, t.ID(), uc.assignmentRepo)
	if err != nil {
		return err
	}

	view := access.TicketView{
		Status:              t.Status().String(),
		OrderBranchID:       t.OrderBranchID(),
		ProductionBranchID:  t.ProductionBranchID(),
		CurrentWorkflowStep: t.CurrentWorkflowStep(),
	}
	if actor.Role.IsProduction() && uc.sequences != nil {
		sequence, err := uc.sequences.ResolveForTicket(ctx, t)
		if err != nil {
			return err
		}
		if len(sequence) > 0 {
			view.FirstWorkflowStep = sequence[0]
		}
	}
	if !uc.policy.CanEdit(view, policyActor) {
		return errors.NewForbiddenError("actor may not edit this ticket")
	}
	return nil
}
