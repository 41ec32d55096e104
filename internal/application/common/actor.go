// Package common holds types shared across application use cases.
package common

import (
	"context"

	"rosecraft/internal/domain/access"
	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/shared/authorization"
)

// Actor is the already-authenticated staff member driving a use case. The
// surrounding interface layer resolves it from the session before invoking
// any use case; a zero UserID marks the unauthenticated public-order flow.
type Actor struct {
	UserID   uint
	Role     authorization.Role
	BranchID *uint
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != 0
}

// PolicyActor adapts the actor for access checks on one ticket, backing the
// step-assignment lookup with the ticket's active worker assignments.
func (a Actor) PolicyActor(ctx context.Context, ticketID uint, assignments workflow.AssignmentRepository) (access.Actor, error) {
	actor := access.Actor{
		UserID:   a.UserID,
		Role:     a.Role,
		BranchID: a.BranchID,
	}

	if !a.Role.IsProduction() || assignments == nil {
		return actor, nil
	}

	active, err := assignments.ListActiveByTicket(ctx, ticketID)
	if err != nil {
		return access.Actor{}, err
	}

	assigned := make(map[string]bool)
	for _, asg := range active {
		if asg.WorkerID() == a.UserID {
			assigned[asg.StepKey()] = true
		}
	}
	actor.AssignedToStep = func(stepKey string) bool {
		return assigned[stepKey]
	}
	return actor, nil
}
