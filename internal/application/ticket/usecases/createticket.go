package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/branch"
	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
	"rosecraft/internal/shared/services/markdown"
)

type CreateTicketCommand struct {
	CustomerID      uint
	JobTypeID       *uint
	Quantity        int
	Width           *decimal.Decimal
	Height          *decimal.Decimal
	SizeVariant     *string
	SizeValue       string
	SizeUnit        string
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	Downpayment     decimal.Decimal
	OrderBranchID   *uint
	CustomSteps     []string
	Remarks         string
	IsOnlineOrder   bool
	Actor           common.Actor
}

type CreateTicketResult struct {
	TicketID     uint
	Number       string
	Status       string
	Subtotal     decimal.Decimal
	TotalAmount  decimal.Decimal
	FreeQuantity int
	CreatedAt    time.Time
}

// CreateTicketUseCase runs the intake pipeline: branch routing, pricing,
// number allocation, and persistence, in one transaction.
type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	jobTypeRepo jobtype.Repository
	branchRepo  branch.Repository
	allocator   ticket.NumberAllocator
	router      *branch.Router
	renderer    markdown.RemarkRenderer
	txManager   TransactionManager
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	jobTypeRepo jobtype.Repository,
	branchRepo branch.Repository,
	allocator ticket.NumberAllocator,
	renderer markdown.RemarkRenderer,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		jobTypeRepo: jobTypeRepo,
		branchRepo:  branchRepo,
		allocator:   allocator,
		router:      branch.NewRouter(),
		renderer:    renderer,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"customer_id", cmd.CustomerID, "job_type_id", cmd.JobTypeID, "quantity", cmd.Quantity)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.CustomerID,
		cmd.JobTypeID,
		cmd.Quantity,
		cmd.SizeValue,
		cmd.SizeUnit,
		cmd.IsOnlineOrder,
		creatorID(cmd.Actor),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	routing, err := uc.resolveRouting(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if err := newTicket.AssignBranches(routing.OrderBranchID, routing.ProductionBranchID); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if cmd.JobTypeID != nil {
		if err := uc.applyJobTypePricing(ctx, newTicket, cmd); err != nil {
			return nil, err
		}
	}

	if !cmd.Downpayment.IsZero() {
		if err := newTicket.SetDownpayment(cmd.Downpayment); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if len(cmd.CustomSteps) > 0 {
		if err := newTicket.SetCustomWorkflowSteps(cmd.CustomSteps); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if len(cmd.Remarks) > 0 {
		sanitized, err := uc.renderer.ToHTMLSanitized(cmd.Remarks)
		if err != nil {
			return nil, errors.NewValidationError("invalid remarks", err.Error())
		}
		newTicket.SetRemarks(sanitized)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, err := uc.allocator.Allocate(txCtx)
		if err != nil {
			return errors.NewStorageError("failed to allocate ticket number", err.Error())
		}
		if err := newTicket.SetNumber(number); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("ticket number already taken")
			}
			return err
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ticket.NewCreatedEvent(newTicket)); err != nil {
			uc.logger.Warnw("failed to publish ticket created event", "error", err)
		}
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(), "number", newTicket.Number(), "total", newTicket.TotalAmount())

	return &CreateTicketResult{
		TicketID:     newTicket.ID(),
		Number:       newTicket.Number(),
		Status:       newTicket.Status().String(),
		Subtotal:     newTicket.Subtotal(),
		TotalAmount:  newTicket.TotalAmount(),
		FreeQuantity: newTicket.FreeQuantity(),
		CreatedAt:    newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.CustomerID == 0 {
		return errors.NewValidationError("customer ID is required")
	}
	if cmd.Quantity <= 0 {
		return errors.NewValidationError("quantity must be positive")
	}
	if cmd.DiscountPercent.IsNegative() || cmd.DiscountAmount.IsNegative() {
		return errors.NewValidationError("discounts cannot be negative")
	}
	if cmd.Downpayment.IsNegative() {
		return errors.NewValidationError("downpayment cannot be negative")
	}
	if !cmd.IsOnlineOrder && !cmd.Actor.IsAuthenticated() {
		return errors.NewForbiddenError("staff orders require an authenticated actor")
	}
	return nil
}

// resolveRouting loads the actor's home branch and the default production
// branch, then lets the router decide. Online orders carry no branches.
func (uc *CreateTicketUseCase) resolveRouting(ctx context.Context, cmd CreateTicketCommand) (branch.Routing, error) {
	var actorBranch *branch.Branch
	if cmd.Actor.BranchID != nil {
		b, err := uc.branchRepo.GetByID(ctx, *cmd.Actor.BranchID)
		if err != nil {
			return branch.Routing{}, err
		}
		actorBranch = b
	}

	defaultProduction, err := uc.branchRepo.GetDefaultProduction(ctx)
	if err != nil {
		return branch.Routing{}, err
	}

	return uc.router.Resolve(actorBranch, cmd.OrderBranchID, defaultProduction), nil
}

func (uc *CreateTicketUseCase) applyJobTypePricing(ctx context.Context, t *ticket.Ticket, cmd CreateTicketCommand) error {
	jt, err := uc.jobTypeRepo.GetByID(ctx, *cmd.JobTypeID)
	if err != nil {
		return err
	}
	if jt == nil {
		return errors.NewNotFoundError("job type not found")
	}

	quote, err := jt.Quote(jobtype.QuoteParams{
		Quantity:        cmd.Quantity,
		Width:           cmd.Width,
		Height:          cmd.Height,
		SizeVariant:     cmd.SizeVariant,
		SizeValue:       cmd.SizeValue,
		SizeUnit:        cmd.SizeUnit,
		DiscountPercent: cmd.DiscountPercent,
		DiscountAmount:  cmd.DiscountAmount,
	})
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := t.ApplyPricing(
		quote.Subtotal,
		cmd.DiscountPercent,
		quote.DiscountAmount,
		quote.TotalAmount,
		quote.FreeQuantity,
		quote.SizeValue,
		quote.SizeUnit,
	); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

func creatorID(actor common.Actor) *uint {
	if !actor.IsAuthenticated() {
		return nil
	}
	id := actor.UserID
	return &id
}
