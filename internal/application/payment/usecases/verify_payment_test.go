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

func unverifiedOnlinePayment(t *testing.T, tk *ticket.Ticket, repo *mockPaymentRepository, amount string) *payment.Payment {
	t.Helper()
	row, err := payment.NewPayment(
		tk.ID(), decimal.RequireFromString(amount),
		pvo.TypeCollection, pvo.AllocationFull, "gcash", nil, time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, row.MarkPendingVerification())
	require.NoError(t, repo.Save(context.Background(), row))
	require.NoError(t, tk.MarkAwaitingVerification())
	return row
}

func TestVerifyPayment_ApprovePostsAndUnfreezes(t *testing.T) {
	tk := ticketWithTotal(t, "500.00", vo.StatusPending)
	paymentRepo := newMockPaymentRepository()
	row := unverifiedOnlinePayment(t, tk, paymentRepo, "500.00")

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := NewVerifyPaymentUseCase(paymentRepo, ticketRepo, &mockTxManager{}, &mockLogger{})

	outcome, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		PaymentID: row.ID(),
		Approve:   true,
		Actor:     common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.NoError(t, err)

	assert.True(t, row.Status().IsPosted())
	assert.True(t, decimal.RequireFromString("500.00").Equal(outcome.AmountPaid))
	assert.Equal(t, "paid", outcome.PaymentStatus)
	assert.True(t, tk.PaymentStatus().IsPaid())
}

func TestVerifyPayment_RejectDiscardsRow(t *testing.T) {
	tk := ticketWithTotal(t, "500.00", vo.StatusPending)
	paymentRepo := newMockPaymentRepository()
	row := unverifiedOnlinePayment(t, tk, paymentRepo, "500.00")

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := NewVerifyPaymentUseCase(paymentRepo, ticketRepo, &mockTxManager{}, &mockLogger{})

	outcome, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		PaymentID: row.ID(),
		Approve:   false,
		Actor:     common.Actor{UserID: 2, Role: authorization.RoleCashier},
	})
	require.NoError(t, err)

	assert.True(t, outcome.AmountPaid.IsZero())
	assert.Equal(t, "pending", outcome.PaymentStatus)
	assert.False(t, tk.PaymentStatus().IsAwaitingVerification())
}

func TestVerifyPayment_ForbiddenRole(t *testing.T) {
	uc := NewVerifyPaymentUseCase(newMockPaymentRepository(), &mockTicketRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		PaymentID: 1,
		Approve:   true,
		Actor:     common.Actor{UserID: 9, Role: authorization.RoleFrontDesk},
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestVerifyPayment_NotFound(t *testing.T) {
	uc := NewVerifyPaymentUseCase(newMockPaymentRepository(), &mockTicketRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), VerifyPaymentCommand{
		PaymentID: 42,
		Approve:   true,
		Actor:     common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
