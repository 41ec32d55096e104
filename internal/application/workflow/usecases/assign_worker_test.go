package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosecraft/internal/application/common"
	"rosecraft/internal/domain/ticket"
	vo "rosecraft/internal/domain/ticket/valueobjects"
	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/shared/authorization"
	"rosecraft/internal/shared/errors"
)

func newAssignUseCase(ticketRepo *mockTicketRepository, assignmentRepo *mockAssignmentRepository, sequence []string) *AssignWorkerUseCase {
	return NewAssignWorkerUseCase(
		ticketRepo,
		assignmentRepo,
		&mockSequenceResolver{Sequence: sequence},
		&mockTxManager{},
		&mockLogger{},
	)
}

func TestAssignWorker_Success(t *testing.T) {
	tk := productionTicket(t, vo.StatusReadyToPrint, 5)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	var saved *workflow.Assignment
	assignmentRepo := &mockAssignmentRepository{
		SaveFunc: func(ctx context.Context, a *workflow.Assignment) error {
			saved = a
			return a.SetID(11)
		},
	}
	uc := newAssignUseCase(ticketRepo, assignmentRepo, []string{"printing", "cutting"})

	result, err := uc.Execute(context.Background(), AssignWorkerCommand{
		TicketID: 10,
		StepKey:  "printing",
		WorkerID: 9,
		Actor:    common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(11), result.AssignmentID)
	require.NotNil(t, saved)
	assert.Equal(t, "printing", saved.StepKey())
	assert.Equal(t, uint(9), saved.WorkerID())
	assert.True(t, saved.IsActive())
}

func TestAssignWorker_ExistingAssignmentReturned(t *testing.T) {
	tk := productionTicket(t, vo.StatusReadyToPrint, 5)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	existing, err := workflow.NewAssignment(10, "printing", 9, nil)
	require.NoError(t, err)
	require.NoError(t, existing.SetID(5))

	var savedCount int
	assignmentRepo := &mockAssignmentRepository{
		GetActiveFunc: func(ctx context.Context, ticketID uint, stepKey string, workerID uint) (*workflow.Assignment, error) {
			return existing, nil
		},
		SaveFunc: func(ctx context.Context, a *workflow.Assignment) error {
			savedCount++
			return nil
		},
	}
	uc := newAssignUseCase(ticketRepo, assignmentRepo, []string{"printing"})

	result, err := uc.Execute(context.Background(), AssignWorkerCommand{
		TicketID: 10,
		StepKey:  "printing",
		WorkerID: 9,
		Actor:    common.Actor{UserID: 1, Role: authorization.RoleProduction},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), result.AssignmentID)
	assert.Zero(t, savedCount)
}

func TestAssignWorker_StepNotInSequence(t *testing.T) {
	tk := productionTicket(t, vo.StatusReadyToPrint, 5)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := newAssignUseCase(ticketRepo, &mockAssignmentRepository{}, []string{"printing"})

	_, err := uc.Execute(context.Background(), AssignWorkerCommand{
		TicketID: 10,
		StepKey:  "laminating",
		WorkerID: 9,
		Actor:    common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignWorker_TerminalTicket(t *testing.T) {
	tk := productionTicket(t, vo.StatusCancelled, 5)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	uc := newAssignUseCase(ticketRepo, &mockAssignmentRepository{}, []string{"printing"})

	_, err := uc.Execute(context.Background(), AssignWorkerCommand{
		TicketID: 10,
		StepKey:  "printing",
		WorkerID: 9,
		Actor:    common.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestAssignWorker_ForbiddenRole(t *testing.T) {
	uc := newAssignUseCase(&mockTicketRepository{}, &mockAssignmentRepository{}, []string{"printing"})

	_, err := uc.Execute(context.Background(), AssignWorkerCommand{
		TicketID: 10,
		StepKey:  "printing",
		WorkerID: 9,
		Actor:    common.Actor{UserID: 1, Role: authorization.RoleFrontDesk},
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
