package usecases

import (
	"context"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/payment"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type RemovePaymentCommand struct {
	PaymentID uint
	Actor     common.Actor
}

// RemovePaymentUseCase soft-deletes a payment row and reconciles the owning
// ticket, so a removed payment immediately stops counting toward the total.
type RemovePaymentUseCase struct {
	paymentRepo payment.Repository
	ticketRepo  ticket.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewRemovePaymentUseCase(
	paymentRepo payment.Repository,
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *RemovePaymentUseCase {
	return &RemovePaymentUseCase{
		paymentRepo: paymentRepo,
		ticketRepo:  ticketRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *RemovePaymentUseCase) Execute(ctx context.Context, cmd RemovePaymentCommand) (*ReconcileOutcome, error) {
	uc.logger.Infow("executing remove payment use case", "payment_id", cmd.PaymentID, "actor_id", cmd.Actor.UserID)

	if cmd.PaymentID == 0 {
		return nil, errors.NewValidationError("payment ID is required")
	}
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admin may remove payments")
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

		if err := uc.paymentRepo.Delete(txCtx, row.ID()); err != nil {
			return err
		}

		outcome, err = reconcileTicket(txCtx, t, uc.paymentRepo, uc.ticketRepo)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to remove payment", "payment_id", cmd.PaymentID, "error", err)
		return nil, err
	}

	return outcome, nil
}
