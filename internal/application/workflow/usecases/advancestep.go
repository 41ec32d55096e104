package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/access"
	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type AdvanceStepCommand struct {
	TicketID          uint
	StepKey           string
	CompletedQuantity int
	Notes             string
	Actor             common.Actor
}

type AdvanceStepResult struct {
	TicketID          uint
	StepKey           string
	CompletedQuantity int
	StepCompleted     bool
	CurrentStep       *string
	TicketStatus      string
	TicketCompleted   bool
	StepIncentive     decimal.Decimal
}

// SequenceResolver yields the step sequence governing a ticket.
type SequenceResolver interface {
	ResolveForTicket(ctx context.Context, t *ticket.Ticket) ([]string, error)
}

// AdvanceStepUseCase records completed units against one workflow step and
// refreshes the ticket's derived workflow fields. Completing the last step
// completes the ticket.
type AdvanceStepUseCase struct {
	ticketRepo     ticket.Repository
	jobTypeRepo    jobtype.Repository
	progressRepo   workflow.ProgressRepository
	assignmentRepo workflow.AssignmentRepository
	sequences      SequenceResolver
	tracker        *workflow.Tracker
	policy         *access.Policy
	txManager      TransactionManager
	publisher      events.EventPublisher
	logger         logger.Interface
}

func NewAdvanceStepUseCase(
	ticketRepo ticket.Repository,
	jobTypeRepo jobtype.Repository,
	progressRepo workflow.ProgressRepository,
	assignmentRepo workflow.AssignmentRepository,
	sequences SequenceResolver,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AdvanceStepUseCase {
	return &AdvanceStepUseCase{
		ticketRepo:     ticketRepo,
		jobTypeRepo:    jobTypeRepo,
		progressRepo:   progressRepo,
		assignmentRepo: assignmentRepo,
		sequences:      sequences,
		tracker:        workflow.NewTracker(),
		policy:         access.NewPolicy(),
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *AdvanceStepUseCase) Execute(ctx context.Context, cmd AdvanceStepCommand) (*AdvanceStepResult, error) {
	uc.logger.Infow("executing advance step use case",
		"ticket_id", cmd.TicketID, "step_key", cmd.StepKey,
		"quantity", cmd.CompletedQuantity, "actor_id", cmd.Actor.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	var result *AdvanceStepResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if t == nil {
			return errors.NewNotFoundError("ticket not found")
		}
		if t.Status().IsTerminal() {
			return errors.NewConflictError("ticket is " + t.Status().String())
		}
		if !t.Status().IsReadyToPrint() && !t.Status().IsInProduction() {
			return errors.NewConflictError("ticket is not in production yet")
		}

		sequence, err := uc.sequences.ResolveForTicket(txCtx, t)
		if err != nil {
			return err
		}
		if !uc.tracker.Contains(sequence, cmd.StepKey) {
			return errors.NewValidationError("step is not part of this ticket's workflow")
		}

		if err := uc.authorize(txCtx, t, sequence, cmd.Actor); err != nil {
			return err
		}

		oldStatus := t.Status()
		now := time.Now().UTC()

		progress, err := uc.progressRepo.GetByTicketAndStep(txCtx, t.ID(), cmd.StepKey)
		if err != nil {
			return err
		}
		isNew := progress == nil
		if isNew {
			progress, err = workflow.NewProgress(t.ID(), cmd.StepKey)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		actorID := actorIDPtr(cmd.Actor)
		if err := progress.Record(cmd.CompletedQuantity, t.OrderableQuantity(), actorID, now); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if len(cmd.Notes) > 0 {
			progress.SetNotes(cmd.Notes)
		}

		if isNew {
			err = uc.progressRepo.Save(txCtx, progress)
		} else {
			err = uc.progressRepo.Update(txCtx, progress)
		}
		if err != nil {
			return err
		}

		t.MarkWorkflowStarted(now)
		if t.Status().IsReadyToPrint() {
			if err := t.MarkInProduction(); err != nil {
				return errors.NewConflictError(err.Error())
			}
		}

		allProgress, err := uc.progressRepo.ListByTicket(txCtx, t.ID())
		if err != nil {
			return err
		}

		currentStep := uc.tracker.CurrentStep(sequence, allProgress)
		t.SetCurrentWorkflowStep(currentStep)

		ticketCompleted := false
		if uc.tracker.IsSequenceComplete(sequence, allProgress) {
			if err := t.CompleteWorkflow(now, t.OrderableQuantity()); err != nil {
				return errors.NewConflictError(err.Error())
			}
			ticketCompleted = true
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		result = &AdvanceStepResult{
			TicketID:          t.ID(),
			StepKey:           cmd.StepKey,
			CompletedQuantity: progress.CompletedQuantity(),
			StepCompleted:     progress.IsCompleted(),
			CurrentStep:       currentStep,
			TicketStatus:      t.Status().String(),
			TicketCompleted:   ticketCompleted,
			StepIncentive:     decimal.Zero,
		}
		if progress.IsCompleted() {
			result.StepIncentive = uc.stepIncentive(txCtx, t, cmd.StepKey)
		}

		if uc.publisher != nil && oldStatus != t.Status() {
			if err := uc.publisher.Publish(ticket.NewStatusChangedEvent(t, oldStatus)); err != nil {
				uc.logger.Warnw("failed to publish status changed event", "error", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to advance workflow step",
			"ticket_id", cmd.TicketID, "step_key", cmd.StepKey, "error", err)
		return nil, err
	}

	return result, nil
}

func (uc *AdvanceStepUseCase) validateCommand(cmd AdvanceStepCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.StepKey) == 0 {
		return errors.NewValidationError("step key is required")
	}
	if cmd.CompletedQuantity <= 0 {
		return errors.NewValidationError("completed quantity must be positive")
	}
	return nil
}

func (uc *AdvanceStepUseCase) authorize(ctx context.Context, t *ticket.Ticket, sequence []string, actor common.Actor) error {
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
	if len(sequence) > 0 {
		view.FirstWorkflowStep = sequence[0]
	}
	if !uc.policy.CanEdit(view, policyActor) {
		return errors.NewForbiddenError("actor may not work on this ticket")
	}
	return nil
}

func (uc *AdvanceStepUseCase) stepIncentive(ctx context.Context, t *ticket.Ticket, stepKey string) decimal.Decimal {
	if t.JobTypeID() == nil {
		return decimal.Zero
	}
	jt, err := uc.jobTypeRepo.GetByID(ctx, *t.JobTypeID())
	if err != nil || jt == nil {
		return decimal.Zero
	}
	return jt.StepIncentive(stepKey)
}

func actorIDPtr(actor common.Actor) *uint {
	if !actor.IsAuthenticated() {
		return nil
	}
	id := actor.UserID
	return &id
}
