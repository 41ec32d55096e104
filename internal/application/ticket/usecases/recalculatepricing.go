package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type RecalculatePricingCommand struct {
	TicketID        uint
	Quantity        *int
	Width           *decimal.Decimal
	Height          *decimal.Decimal
	SizeVariant     *string
	DiscountPercent *decimal.Decimal
	DiscountAmount  *decimal.Decimal
	// DryRun quotes without persisting, for price previews at the counter.
	DryRun bool
}

type RecalculatePricingResult struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	FreeQuantity   int
	SizeValue      string
	SizeUnit       string
}

// RecalculatePricingUseCase reprices a ticket against its job type. This is
// the single write path for the pricing projection; quantity or discount
// edits land here so free units and totals are never left stale.
type RecalculatePricingUseCase struct {
	ticketRepo  ticket.Repository
	jobTypeRepo jobtype.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewRecalculatePricingUseCase(
	ticketRepo ticket.Repository,
	jobTypeRepo jobtype.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *RecalculatePricingUseCase {
	return &RecalculatePricingUseCase{
		ticketRepo:  ticketRepo,
		jobTypeRepo: jobTypeRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *RecalculatePricingUseCase) Execute(ctx context.Context, cmd RecalculatePricingCommand) (*RecalculatePricingResult, error) {
	uc.logger.Infow("executing recalculate pricing use case", "ticket_id", cmd.TicketID, "dry_run", cmd.DryRun)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var result *RecalculatePricingResult
	run := func(txCtx context.Context) error {
		t, err := uc.loadTicket(txCtx, cmd)
		if err != nil {
			return err
		}

		if t.JobTypeID() == nil {
			return errors.NewConflictError("custom-job tickets are priced manually")
		}
		jt, err := uc.jobTypeRepo.GetByID(txCtx, *t.JobTypeID())
		if err != nil {
			return err
		}
		if jt == nil {
			return errors.NewNotFoundError("job type not found")
		}

		quantity := t.Quantity()
		if cmd.Quantity != nil {
			quantity = *cmd.Quantity
		}
		discountPercent := t.DiscountPercent()
		if cmd.DiscountPercent != nil {
			discountPercent = *cmd.DiscountPercent
		}
		// A stored amount with zero percent is an explicit override, not a
		// percent-derived figure; it survives edits that do not touch the
		// discount. Percent-derived amounts are recomputed from the percent.
		discountAmount := decimal.Zero
		switch {
		case cmd.DiscountAmount != nil:
			discountAmount = *cmd.DiscountAmount
		case cmd.DiscountPercent == nil && t.DiscountPercent().IsZero():
			discountAmount = t.DiscountAmount()
		}

		quote, err := jt.Quote(jobtype.QuoteParams{
			Quantity:        quantity,
			Width:           cmd.Width,
			Height:          cmd.Height,
			SizeVariant:     cmd.SizeVariant,
			SizeValue:       t.SizeValue(),
			SizeUnit:        t.SizeUnit(),
			DiscountPercent: discountPercent,
			DiscountAmount:  discountAmount,
		})
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		result = &RecalculatePricingResult{
			Subtotal:       quote.Subtotal,
			DiscountAmount: quote.DiscountAmount,
			TotalAmount:    quote.TotalAmount,
			FreeQuantity:   quote.FreeQuantity,
			SizeValue:      quote.SizeValue,
			SizeUnit:       quote.SizeUnit,
		}

		if cmd.DryRun {
			return nil
		}

		if cmd.Quantity != nil {
			if err := t.ChangeQuantity(*cmd.Quantity); err != nil {
				return errors.NewConflictError(err.Error())
			}
		}
		if err := t.ApplyPricing(
			quote.Subtotal,
			discountPercent,
			quote.DiscountAmount,
			quote.TotalAmount,
			quote.FreeQuantity,
			quote.SizeValue,
			quote.SizeUnit,
		); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.ticketRepo.Update(txCtx, t)
	}

	var err error
	if cmd.DryRun {
		err = run(ctx)
	} else {
		err = uc.txManager.RunInTransaction(ctx, run)
	}
	if err != nil {
		uc.logger.Errorw("failed to recalculate pricing", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return result, nil
}

func (uc *RecalculatePricingUseCase) loadTicket(ctx context.Context, cmd RecalculatePricingCommand) (*ticket.Ticket, error) {
	var (
		t   *ticket.Ticket
		err error
	)
	if cmd.DryRun {
		t, err = uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	} else {
		t, err = uc.ticketRepo.GetByIDForUpdate(ctx, cmd.TicketID)
	}
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}
