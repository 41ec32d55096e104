package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/payment"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/errors"
	"rosecraft/internal/shared/logger"
)

type UpdatePaymentCommand struct {
	PaymentID uint
	Amount    *decimal.Decimal
	Notes     *string
	Actor     common.Actor
}

// UpdatePaymentUseCase corrects a mis-keyed payment row and reconciles the
// owning ticket in the same transaction.
type UpdatePaymentUseCase struct {
	paymentRepo payment.Repository
	ticketRepo  ticket.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewUpdatePaymentUseCase(
	paymentRepo payment.Repository,
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{
		paymentRepo: paymentRepo,
		ticketRepo:  ticketRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *UpdatePaymentUseCase) Execute(ctx context.Context, cmd UpdatePaymentCommand) (*ReconcileOutcome, error) {
	uc.logger.Infow("executing update payment use case", "payment_id", cmd.PaymentID, "actor_id", cmd.Actor.UserID)

	if cmd.PaymentID == 0 {
		return nil, errors.NewValidationError("payment ID is required")
	}
	if !cmd.Actor.Role.IsAdmin() && !cmd.Actor.Role.IsCashier() {
		return nil, errors.NewForbiddenError("only admin or cashier may edit payments")
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

		if cmd.Amount != nil {
			if err := row.ChangeAmount(*cmd.Amount); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.Notes != nil {
			row.SetNotes(*cmd.Notes)
		}
		if err := uc.paymentRepo.Update(txCtx, row); err != nil {
			return err
		}

		outcome, err = reconcileTicket(txCtx, t, uc.paymentRepo, uc.ticketRepo)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to update payment", "payment_id", cmd.PaymentID, "error", err)
		return nil, err
	}

	return outcome, nil
}
