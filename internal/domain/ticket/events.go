package ticket

import (
	"fmt"

	"github.com/shopspring/decimal"

	"rosecraft/internal/domain/shared/events"
	vo "rosecraft/internal/domain/ticket/valueobjects"
)

const (
	EventTicketCreated        = "ticket.created"
	EventTicketStatusChanged  = "ticket.status_changed"
	EventTicketCancelled      = "ticket.cancelled"
	EventTicketCompleted      = "ticket.completed"
	EventPaymentStatusChanged = "ticket.payment_status_changed"
)

type CreatedEvent struct {
	events.BaseEvent
	TicketID    uint
	Number      string
	CustomerID  uint
	TotalAmount decimal.Decimal
}

func NewCreatedEvent(t *Ticket) *CreatedEvent {
	return &CreatedEvent{
		BaseEvent:   events.NewBaseEvent(EventTicketCreated, fmt.Sprintf("%d", t.ID())),
		TicketID:    t.ID(),
		Number:      t.Number(),
		CustomerID:  t.CustomerID(),
		TotalAmount: t.TotalAmount(),
	}
}

type StatusChangedEvent struct {
	events.BaseEvent
	TicketID  uint
	Number    string
	OldStatus vo.TicketStatus
	NewStatus vo.TicketStatus
}

func NewStatusChangedEvent(t *Ticket, oldStatus vo.TicketStatus) *StatusChangedEvent {
	eventType := EventTicketStatusChanged
	switch {
	case t.Status().IsCancelled():
		eventType = EventTicketCancelled
	case t.Status().IsCompleted():
		eventType = EventTicketCompleted
	}
	return &StatusChangedEvent{
		BaseEvent: events.NewBaseEvent(eventType, fmt.Sprintf("%d", t.ID())),
		TicketID:  t.ID(),
		Number:    t.Number(),
		OldStatus: oldStatus,
		NewStatus: t.Status(),
	}
}

type PaymentStatusChangedEvent struct {
	events.BaseEvent
	TicketID   uint
	Number     string
	AmountPaid decimal.Decimal
	OldStatus  vo.PaymentStatus
	NewStatus  vo.PaymentStatus
}

func NewPaymentStatusChangedEvent(t *Ticket, oldStatus vo.PaymentStatus) *PaymentStatusChangedEvent {
	return &PaymentStatusChangedEvent{
		BaseEvent:  events.NewBaseEvent(EventPaymentStatusChanged, fmt.Sprintf("%d", t.ID())),
		TicketID:   t.ID(),
		Number:     t.Number(),
		AmountPaid: t.AmountPaid(),
		OldStatus:  oldStatus,
		NewStatus:  t.PaymentStatus(),
	}
}
