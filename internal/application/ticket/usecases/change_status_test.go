package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/ticket"
	vo "rosecraft/internal/domain/ticket/valueobjects"
	"rosecraft/internal/shared/authorization"
	"rosecraft/internal/shared/errors"
)

func reconstructedTicket(t *testing.T, status vo.TicketStatus, designStatus vo.DesignStatus) *ticket.Ticket {
	t.Helper()
	orderBranch, productionBranch := uint(1), uint(2)
	tk, err := ticket.ReconstructTicket(
		10, "RC-2026-AAAA", 7,
		&orderBranch, &productionBranch, nil,
		5, 0, 0, "", "",
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero,
		status, vo.PaymentPending, designStatus,
		nil, nil, nil, nil, false,
		"", false, nil,
		1, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return tk
}

func newChangeStatusUseCase(repo *mockTicketRepository, publisher *mockPublisher) *ChangeStatusUseCase {
	return NewChangeStatusUseCase(
		repo,
		&mockAssignmentRepository{},
		&mockSequenceResolver{Sequence: []string{"printing"}},
		&mockTxManager{},
		publisher,
		&mockLogger{},
	)
}

func TestChangeStatus_Success(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusPending, vo.DesignPending)
	var updated bool
	repo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	publisher := &mockPublisher{}
	uc := newChangeStatusUseCase(repo, publisher)

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  10,
		NewStatus: "in_designer",
		Actor:     common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", result.OldStatus)
	assert.Equal(t, "in_designer", result.NewStatus)
	assert.True(t, updated)
	require.Len(t, publisher.Published, 1)
	assert.Equal(t, ticket.EventTicketStatusChanged, publisher.Published[0].GetEventType())
}

func TestChangeStatus_InvalidTransition(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusPending, vo.DesignPending)
	repo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := newChangeStatusUseCase(repo, &mockPublisher{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  10,
		NewStatus: "completed",
		Actor:     common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestChangeStatus_DesignGate(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInDesigner, vo.DesignInReview)
	repo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := newChangeStatusUseCase(repo, &mockPublisher{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  10,
		NewStatus: "ready_to_print",
		Actor:     common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestChangeStatus_ForbiddenByRole(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInProduction, vo.DesignApproved)
	repo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := newChangeStatusUseCase(repo, &mockPublisher{})

	// Front desk may not touch in_production tickets.
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  10,
		NewStatus: "completed",
		Actor:     common.Actor{UserID: 2, Role: authorization.RoleFrontDesk},
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestChangeStatus_NotFound(t *testing.T) {
	uc := newChangeStatusUseCase(&mockTicketRepository{}, &mockPublisher{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  99,
		NewStatus: "in_designer",
		Actor:     common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
