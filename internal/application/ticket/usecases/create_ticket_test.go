package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/branch"
	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/shared/authorization"
	"rosecraft/internal/shared/errors"
)

func testJobType(t *testing.T) *jobtype.JobType {
	t.Helper()
	jt, err := jobtype.NewJobType("Mug Print", "MUG", decimal.RequireFromString("150.00"))
	require.NoError(t, err)
	require.NoError(t, jt.SetID(3))
	require.NoError(t, jt.SetPromoRules([]jobtype.PromoRule{
		{BuyQuantity: 12, FreeQuantity: 1, IsActive: true},
	}))
	return jt
}

func testBranch(t *testing.T, id uint, canProduce bool) *branch.Branch {
	t.Helper()
	b, err := branch.ReconstructBranch(id, "Main", "MAIN", true, canProduce, canProduce, true, time.Now(), time.Now())
	require.NoError(t, err)
	return b
}

func newCreateUseCase(
	ticketRepo *mockTicketRepository,
	jobTypeRepo *mockJobTypeRepository,
	branchRepo *mockBranchRepository,
) *CreateTicketUseCase {
	return NewCreateTicketUseCase(
		ticketRepo,
		jobTypeRepo,
		branchRepo,
		&mockAllocator{},
		&mockRenderer{},
		&mockTxManager{},
		&mockPublisher{},
		&mockLogger{},
	)
}

func TestCreateTicket_Success(t *testing.T) {
	jt := testJobType(t)
	branchID := uint(1)
	var saved *ticket.Ticket

	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(42)
		},
	}
	jobTypeRepo := &mockJobTypeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*jobtype.JobType, error) {
			return jt, nil
		},
	}
	branchRepo := &mockBranchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*branch.Branch, error) {
			return testBranch(t, id, true), nil
		},
	}

	uc := newCreateUseCase(ticketRepo, jobTypeRepo, branchRepo)
	jobTypeID := uint(3)

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		CustomerID: 7,
		JobTypeID:  &jobTypeID,
		Quantity:   24,
		Actor:      common.Actor{UserID: 5, Role: authorization.RoleFrontDesk, BranchID: &branchID},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "RC-2026-TEST", result.Number)
	assert.Equal(t, "pending", result.Status)
	// 24 x 150 with the buy-12-get-1 promo
	assert.True(t, decimal.RequireFromString("3600.00").Equal(result.TotalAmount))
	assert.Equal(t, 2, result.FreeQuantity)

	require.NotNil(t, saved)
	require.NotNil(t, saved.OrderBranchID())
	assert.Equal(t, uint(1), *saved.OrderBranchID())
	require.NotNil(t, saved.ProductionBranchID())
	assert.Equal(t, uint(1), *saved.ProductionBranchID())
}

func TestCreateTicket_CustomJobSkipsPricing(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(1)
		},
	}
	branchID := uint(1)
	branchRepo := &mockBranchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*branch.Branch, error) {
			return testBranch(t, id, true), nil
		},
	}

	uc := newCreateUseCase(ticketRepo, &mockJobTypeRepository{}, branchRepo)

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		CustomerID: 7,
		Quantity:   5,
		Actor:      common.Actor{UserID: 5, Role: authorization.RoleFrontDesk, BranchID: &branchID},
	})
	require.NoError(t, err)

	assert.True(t, result.TotalAmount.IsZero())
	assert.Equal(t, 0, result.FreeQuantity)
}

func TestCreateTicket_OnlineOrderHasNoBranches(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(1)
		},
	}

	uc := newCreateUseCase(ticketRepo, &mockJobTypeRepository{}, &mockBranchRepository{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		CustomerID:    7,
		Quantity:      5,
		IsOnlineOrder: true,
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Nil(t, saved.OrderBranchID())
	assert.Nil(t, saved.ProductionBranchID())
	assert.True(t, saved.IsOnlineOrder())
	assert.Nil(t, saved.CreatedBy())
}

func TestCreateTicket_ValidationFailures(t *testing.T) {
	uc := newCreateUseCase(&mockTicketRepository{}, &mockJobTypeRepository{}, &mockBranchRepository{})
	actor := common.Actor{UserID: 5, Role: authorization.RoleFrontDesk}

	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"missing customer", CreateTicketCommand{Quantity: 1, Actor: actor}},
		{"zero quantity", CreateTicketCommand{CustomerID: 7, Actor: actor}},
		{"negative discount", CreateTicketCommand{
			CustomerID: 7, Quantity: 1, Actor: actor,
			DiscountPercent: decimal.RequireFromString("-5"),
		}},
		{"unauthenticated staff order", CreateTicketCommand{CustomerID: 7, Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err) || errors.IsForbiddenError(err))
		})
	}
}

func TestCreateTicket_UnknownJobType(t *testing.T) {
	branchID := uint(1)
	branchRepo := &mockBranchRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*branch.Branch, error) {
			return testBranch(t, id, true), nil
		},
	}
	uc := newCreateUseCase(&mockTicketRepository{}, &mockJobTypeRepository{}, branchRepo)
	jobTypeID := uint(99)

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		CustomerID: 7,
		JobTypeID:  &jobTypeID,
		Quantity:   1,
		Actor:      common.Actor{UserID: 5, Role: authorization.RoleFrontDesk, BranchID: &branchID},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
