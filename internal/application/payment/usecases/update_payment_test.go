package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/payment"
	pvo "rosecraft/internal/domain/payment/valueobjects"
	"rosecraft/internal/domain/ticket"
	vo "rosecraft/internal/domain/ticket/valueobjects"
	"rosecraft/internal/shared/authorization"
	"rosecraft/internal/shared/errors"
)

func postedPayment(t *testing.T, tk *ticket.Ticket, repo *mockPaymentRepository, amount string) *payment.Payment {
	t.Helper()
	row, err := payment.NewPayment(
		tk.ID(), decimal.RequireFromString(amount),
		pvo.TypeCollection, pvo.AllocationDownpayment, "cash", nil, time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), row))
	return row
}

func TestUpdatePayment_AmountCorrectionReconciles(t *testing.T) {
	tk := ticketWithTotal(t, "1000.00", vo.StatusPending)
	paymentRepo := newMockPaymentRepository()
	row := postedPayment(t, tk, paymentRepo, "400.00")

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := NewUpdatePaymentUseCase(paymentRepo, ticketRepo, &mockTxManager{}, &mockLogger{})

	corrected := decimal.RequireFromString("1000.00")
	outcome, err := uc.Execute(context.Background(), UpdatePaymentCommand{
		PaymentID: row.ID(),
		Amount:    &corrected,
		Actor:     common.Actor{UserID: 2, Role: authorization.RoleCashier},
	})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("1000.00").Equal(outcome.AmountPaid))
	assert.Equal(t, "paid", outcome.PaymentStatus)
}

func TestUpdatePayment_ZeroAmountRejected(t *testing.T) {
	tk := ticketWithTotal(t, "1000.00", vo.StatusPending)
	paymentRepo := newMockPaymentRepository()
	row := postedPayment(t, tk, paymentRepo, "400.00")

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := NewUpdatePaymentUseCase(paymentRepo, ticketRepo, &mockTxManager{}, &mockLogger{})

	zero := decimal.Zero
	_, err := uc.Execute(context.Background(), UpdatePaymentCommand{
		PaymentID: row.ID(),
		Amount:    &zero,
		Actor:     common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdatePayment_ForbiddenRole(t *testing.T) {
	uc := NewUpdatePaymentUseCase(newMockPaymentRepository(), &mockTicketRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdatePaymentCommand{
		PaymentID: 1,
		Actor:     common.Actor{UserID: 9, Role: authorization.RoleFrontDesk},
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestRemovePayment_ReconcilesWithoutRow(t *testing.T) {
	tk := ticketWithTotal(t, "1000.00", vo.StatusPending)
	paymentRepo := newMockPaymentRepository()
	keep := postedPayment(t, tk, paymentRepo, "400.00")
	drop := postedPayment(t, tk, paymentRepo, "600.00")

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := NewRemovePaymentUseCase(paymentRepo, ticketRepo, &mockTxManager{}, &mockLogger{})

	outcome, err := uc.Execute(context.Background(), RemovePaymentCommand{
		PaymentID: drop.ID(),
		Actor:     common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.NoError(t, err)

	assert.True(t, keep.Amount().Equal(outcome.AmountPaid))
	assert.Equal(t, "partial", outcome.PaymentStatus)
}

func TestRemovePayment_AdminOnly(t *testing.T) {
	uc := NewRemovePaymentUseCase(newMockPaymentRepository(), &mockTicketRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RemovePaymentCommand{
		PaymentID: 1,
		Actor:     common.Actor{UserID: 2, Role: authorization.RoleCashier},
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
