package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/payment"
	vo "rosecraft/internal/domain/payment/valueobjects"
	"rosecraft/internal/domain/shared/events"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type RecordPaymentCommand struct {
	TicketID    uint
	Amount      decimal.Decimal
	PaymentType string
	Allocation  string
	Method      string
	ReferenceNo string
	Notes       string
	// Unverified marks an online payment that needs manual proof review;
	// the row is stored pending and the ticket flagged awaiting_verification.
	Unverified bool
	ReceivedAt time.Time
	Actor      common.Actor
}

type RecordPaymentResult struct {
	PaymentID     uint
	AmountPaid    decimal.Decimal
	PaymentStatus string
}

// RecordPaymentUseCase appends a payment row and reconciles the ticket in
// one transaction holding the ticket row lock.
type RecordPaymentUseCase struct {
	paymentRepo payment.Repository
	ticketRepo  ticket.Repository
	txManager   TransactionManager
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewRecordPaymentUseCase(
	paymentRepo payment.Repository,
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		paymentRepo: paymentRepo,
		ticketRepo:  ticketRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *RecordPaymentUseCase) Execute(ctx context.Context, cmd RecordPaymentCommand) (*RecordPaymentResult, error) {
	uc.logger.Infow("executing record payment use case",
		"ticket_id", cmd.TicketID, "amount", cmd.Amount, "actor_id", cmd.Actor.UserID)

	paymentType, err := vo.NewPaymentType(cmd.PaymentType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	allocation, err := vo.NewAllocation(cmd.Allocation)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Actor.Role.IsProduction() || cmd.Actor.Role.IsDesigner() {
		return nil, errors.NewForbiddenError("role may not record payments")
	}

	var result *RecordPaymentResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if t == nil {
			return errors.NewNotFoundError("ticket not found")
		}
		if t.Status().IsCancelled() {
			return errors.NewConflictError("cannot record payments on a cancelled ticket")
		}

		row, err := payment.NewPayment(
			t.ID(), cmd.Amount, paymentType, allocation, cmd.Method,
			receivedBy(cmd.Actor), cmd.ReceivedAt,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if len(cmd.ReferenceNo) > 0 {
			row.SetReferenceNo(cmd.ReferenceNo)
		}
		if len(cmd.Notes) > 0 {
			row.SetNotes(cmd.Notes)
		}

		balanceBefore := t.TotalAmount().Sub(t.AmountPaid())
		row.SnapshotBalances(balanceBefore, balanceBefore.Sub(cmd.Amount))

		if cmd.Unverified {
			if err := row.MarkPendingVerification(); err != nil {
				return errors.NewConflictError(err.Error())
			}
		}

		if err := uc.paymentRepo.Save(txCtx, row); err != nil {
			return err
		}

		if cmd.Unverified {
			if err := t.MarkAwaitingVerification(); err != nil {
				return errors.NewConflictError(err.Error())
			}
		}

		oldPaymentStatus := t.PaymentStatus()
		outcome, err := reconcileTicket(txCtx, t, uc.paymentRepo, uc.ticketRepo)
		if err != nil {
			return err
		}

		result = &RecordPaymentResult{
			PaymentID:     row.ID(),
			AmountPaid:    outcome.AmountPaid,
			PaymentStatus: outcome.PaymentStatus,
		}

		if uc.publisher != nil && oldPaymentStatus.String() != outcome.PaymentStatus {
			if err := uc.publisher.Publish(ticket.NewPaymentStatusChangedEvent(t, oldPaymentStatus)); err != nil {
				uc.logger.Warnw("failed to publish payment status event", "error", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to record payment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("payment recorded",
		"ticket_id", cmd.TicketID, "amount_paid", result.AmountPaid, "payment_status", result.PaymentStatus)
	return result, nil
}

func receivedBy(actor common.Actor) *uint {
	if !actor.IsAuthenticated() {
		return nil
	}
	id := actor.UserID
	return &id
}
