package usecases

import (
	"context"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type AssignWorkerCommand struct {
	TicketID uint
	StepKey  string
	WorkerID uint
	Actor    common.Actor
}

type AssignWorkerResult struct {
	AssignmentID uint
	Reactivated  bool
}

// AssignWorkerUseCase links a production worker to one step of a ticket.
// Re-assigning an existing inactive link reactivates it instead of creating
// a duplicate row, keeping incentive history on one record.
type AssignWorkerUseCase struct {
	ticketRepo     ticket.Repository
	assignmentRepo workflow.AssignmentRepository
	sequences      SequenceResolver
	tracker        *workflow.Tracker
	txManager      TransactionManager
	logger         logger.Interface
}

func NewAssignWorkerUseCase(
	ticketRepo ticket.Repository,
	assignmentRepo workflow.AssignmentRepository,
	sequences SequenceResolver,
	txManager TransactionManager,
	logger logger.Interface,
) *AssignWorkerUseCase {
	return &AssignWorkerUseCase{
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		sequences:      sequences,
		tracker:        workflow.NewTracker(),
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *AssignWorkerUseCase) Execute(ctx context.Context, cmd AssignWorkerCommand) (*AssignWorkerResult, error) {
	uc.logger.Infow("executing assign worker use case",
		"ticket_id", cmd.TicketID, "step_key", cmd.StepKey, "worker_id", cmd.WorkerID)

	if cmd.TicketID == 0 || cmd.WorkerID == 0 {
		return nil, errors.NewValidationError("ticket ID and worker ID are required")
	}
	if len(cmd.StepKey) == 0 {
		return nil, errors.NewValidationError("step key is required")
	}
	if !cmd.Actor.Role.IsAdmin() && !cmd.Actor.Role.IsProduction() {
		return nil, errors.NewForbiddenError("only admin or production may assign workers")
	}

	var result *AssignWorkerResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if t == nil {
			return errors.NewNotFoundError("ticket not found")
		}
		if t.Status().IsTerminal() {
			return errors.NewConflictError("cannot assign workers to a " + t.Status().String() + " ticket")
		}

		sequence, err := uc.sequences.ResolveForTicket(txCtx, t)
		if err != nil {
			return err
		}
		if !uc.tracker.Contains(sequence, cmd.StepKey) {
			return errors.NewValidationError("step is not part of this ticket's workflow")
		}

		existing, err := uc.assignmentRepo.GetActive(txCtx, cmd.TicketID, cmd.StepKey, cmd.WorkerID)
		if err != nil {
			return err
		}
		if existing != nil {
			result = &AssignWorkerResult{AssignmentID: existing.ID(), Reactivated: false}
			return nil
		}

		assignment, err := workflow.NewAssignment(cmd.TicketID, cmd.StepKey, cmd.WorkerID, actorIDPtr(cmd.Actor))
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.assignmentRepo.Save(txCtx, assignment); err != nil {
			return err
		}

		result = &AssignWorkerResult{AssignmentID: assignment.ID()}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to assign worker", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return result, nil
}
