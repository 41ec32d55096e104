package usecases

import (
	"context"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/payment"
	"rosecraft/internal/domain/ticket"
	vo "rosecraft/internal/domain/ticket/valueobjects"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type VerifyPaymentCommand struct {
	PaymentID uint
	Approve   bool
	Actor     common.Actor
}

// VerifyPaymentUseCase resolves an online payment awaiting proof review:
// approval posts the row, rejection discards it. Either way the ticket
// leaves awaiting_verification and reconciliation derives the real status.
type VerifyPaymentUseCase struct {
	paymentRepo payment.Repository
	ticketRepo  ticket.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewVerifyPaymentUseCase(
	paymentRepo payment.Repository,
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *VerifyPaymentUseCase {
	return &VerifyPaymentUseCase{
		paymentRepo: paymentRepo,
		ticketRepo:  ticketRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *VerifyPaymentUseCase) Execute(ctx context.Context, cmd VerifyPaymentCommand) (*ReconcileOutcome, error) {
	uc.logger.Infow("executing verify payment use case",
		"payment_id", cmd.PaymentID, "approve", cmd.Approve, "actor_id", cmd.Actor.UserID)

	if cmd.PaymentID == 0 {
		return nil, errors.NewValidationError("payment ID is required")
	}
	if !cmd.Actor.Role.IsAdmin() && !cmd.Actor.Role.IsCashier() {
		return nil, errors.NewForbiddenError("only admin or cashier may verify payments")
	}

	var outcome *ReconcileOutcome
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		row, err := uc.paymentRepo.GetByID(txCtx, cmd.PaymentID)
		if err != nil {
			return err
		}
		if row == nil {
			return errors.NewNotFoundError("payment not found")
		}

		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, row.TicketID())
		if err != nil {
			return err
		}
		if t == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if cmd.Approve {
			if err := row.MarkPosted(); err != nil {
				return errors.NewConflictError(err.Error())
			}
		} else {
			if err := row.MarkRejected(); err != nil {
				return errors.NewConflictError(err.Error())
			}
		}
		if err := uc.paymentRepo.Update(txCtx, row); err != nil {
			return err
		}

		// Clear the freeze before reconciling so the derived status takes
		// over again.
		if t.PaymentStatus().IsAwaitingVerification() {
			if err := t.ApplyReconciliation(t.AmountPaid(), vo.PaymentPending); err != nil {
				return err
			}
		}

		outcome, err = reconcileTicket(txCtx, t, uc.paymentRepo, uc.ticketRepo)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to verify payment", "payment_id", cmd.PaymentID, "error", err)
		return nil, err
	}

	return outcome, nil
}
