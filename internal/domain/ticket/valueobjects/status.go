package valueobjects

import "fmt"

// TicketStatus is the production lifecycle state of a ticket.
type TicketStatus string

const (
	StatusPending      TicketStatus = "pending"
	StatusInDesigner   TicketStatus = "in_designer"
	StatusReadyToPrint TicketStatus = "ready_to_print"
	StatusInProduction TicketStatus = "in_production"
	StatusCompleted    TicketStatus = "completed"
	StatusCancelled    TicketStatus = "cancelled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending:      true,
	StatusInDesigner:   true,
	StatusReadyToPrint: true,
	StatusInProduction: true,
	StatusCompleted:    true,
	StatusCancelled:    true,
}

// cancelled is reachable from any non-terminal state.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusInDesigner,
		StatusCancelled,
	},
	StatusInDesigner: {
		StatusReadyToPrint,
		StatusCancelled,
	},
	StatusReadyToPrint: {
		StatusInProduction,
		StatusCancelled,
	},
	StatusInProduction: {
		StatusCompleted,
		StatusCancelled,
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsInDesigner() bool {
	return ts == StatusInDesigner
}

func (ts TicketStatus) IsReadyToPrint() bool {
	return ts == StatusReadyToPrint
}

func (ts TicketStatus) IsInProduction() bool {
	return ts == StatusInProduction
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func (ts TicketStatus) IsCancelled() bool {
	return ts == StatusCancelled
}

// IsTerminal reports whether the status admits no further transitions.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusCompleted || ts == StatusCancelled
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
