package access

import (
	"rosecraft/internal/shared/authorization"
)

// TicketView is the slice of ticket state the policy needs. Keeping it a
// plain struct decouples the policy from the ticket aggregate.
type TicketView struct {
	Status              string
	OrderBranchID       *uint
	ProductionBranchID  *uint
	CurrentWorkflowStep *string
	// FirstWorkflowStep heads the resolved sequence; empty when unresolved.
	FirstWorkflowStep string
}

// Actor is an already-authenticated staff member. AssignedToStep is backed
// by the active worker assignments for the ticket at hand.
type Actor struct {
	UserID         uint
	Role           authorization.Role
	BranchID       *uint
	AssignedToStep func(stepKey string) bool
}

func (a Actor) isAssignedTo(stepKey string) bool {
	if len(stepKey) == 0 || a.AssignedToStep == nil {
		return false
	}
	return a.AssignedToStep(stepKey)
}

// Policy is the single decision point for ticket access. Every mutation
// path consults it instead of comparing role strings inline.
type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

// CanEdit decides whether the actor may mutate the ticket, by role and
// ticket status. Production workers additionally need an active assignment
// to the step the ticket sits at.
func (p *Policy) CanEdit(t TicketView, actor Actor) bool {
	switch {
	case actor.Role.IsAdmin():
		return true

	case actor.Role.IsFrontDesk():
		return t.Status == "pending" || t.Status == "ready_to_print" || t.Status == "in_designer"

	case actor.Role.IsDesigner():
		return t.Status == "in_designer"

	case actor.Role.IsProduction():
		if t.Status == "ready_to_print" {
			return actor.isAssignedTo(t.FirstWorkflowStep)
		}
		if t.Status == "in_production" && t.CurrentWorkflowStep != nil {
			return actor.isAssignedTo(*t.CurrentWorkflowStep)
		}
		return false

	default:
		return false
	}
}

// CanView scopes visibility by branch. Admins and designers see everything;
// order-side roles see their branch's orders; production sees tickets routed
// to their branch for production.
func (p *Policy) CanView(t TicketView, actor Actor) bool {
	switch {
	case actor.Role.IsAdmin():
		return true

	case actor.Role.IsDesigner():
		return true

	case actor.Role.IsOrderScoped():
		return sameBranch(t.OrderBranchID, actor.BranchID)

	case actor.Role.IsProduction():
		return sameBranch(t.ProductionBranchID, actor.BranchID)

	default:
		return false
	}
}

func sameBranch(ticketBranch, actorBranch *uint) bool {
	if ticketBranch == nil || actorBranch == nil {
		return false
	}
	return *ticketBranch == *actorBranch
}
