package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rosecraft/internal/domain/ticket"
)

// TicketDTO is the outward-facing shape of a ticket. Money stays decimal;
// formatting for display is the caller's concern.
type TicketDTO struct {
	ID                  uint            `json:"id"`
	Number              string          `json:"number"`
	CustomerID          uint            `json:"customer_id"`
	OrderBranchID       *uint           `json:"order_branch_id,omitempty"`
	ProductionBranchID  *uint           `json:"production_branch_id,omitempty"`
	JobTypeID           *uint           `json:"job_type_id,omitempty"`
	Quantity            int             `json:"quantity"`
	FreeQuantity        int             `json:"free_quantity"`
	ProducedQuantity    int             `json:"produced_quantity"`
	SizeValue           string          `json:"size_value,omitempty"`
	SizeUnit            string          `json:"size_unit,omitempty"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	Downpayment         decimal.Decimal `json:"downpayment"`
	AmountPaid          decimal.Decimal `json:"amount_paid"`
	Balance             decimal.Decimal `json:"balance"`
	Status              string          `json:"status"`
	PaymentStatus       string          `json:"payment_status"`
	DesignStatus        string          `json:"design_status"`
	CurrentWorkflowStep *string         `json:"current_workflow_step,omitempty"`
	CustomWorkflowSteps []string        `json:"custom_workflow_steps,omitempty"`
	WorkflowStartedAt   *time.Time      `json:"workflow_started_at,omitempty"`
	WorkflowCompletedAt *time.Time      `json:"workflow_completed_at,omitempty"`
	IsOnlineOrder       bool            `json:"is_online_order"`
	Remarks             string          `json:"remarks,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:                  t.ID(),
		Number:              t.Number(),
		CustomerID:          t.CustomerID(),
		OrderBranchID:       t.OrderBranchID(),
		ProductionBranchID:  t.ProductionBranchID(),
		JobTypeID:           t.JobTypeID(),
		Quantity:            t.Quantity(),
		FreeQuantity:        t.FreeQuantity(),
		ProducedQuantity:    t.ProducedQuantity(),
		SizeValue:           t.SizeValue(),
		SizeUnit:            t.SizeUnit(),
		Subtotal:            t.Subtotal(),
		DiscountPercent:     t.DiscountPercent(),
		DiscountAmount:      t.DiscountAmount(),
		TotalAmount:         t.TotalAmount(),
		Downpayment:         t.Downpayment(),
		AmountPaid:          t.AmountPaid(),
		Balance:             t.TotalAmount().Sub(t.AmountPaid()),
		Status:              t.Status().String(),
		PaymentStatus:       t.PaymentStatus().String(),
		DesignStatus:        t.DesignStatus().String(),
		CurrentWorkflowStep: t.CurrentWorkflowStep(),
		CustomWorkflowSteps: t.CustomWorkflowSteps(),
		WorkflowStartedAt:   t.WorkflowStartedAt(),
		WorkflowCompletedAt: t.WorkflowCompletedAt(),
		IsOnlineOrder:       t.IsOnlineOrder(),
		Remarks:             t.Remarks(),
		CreatedAt:           t.CreatedAt(),
		UpdatedAt:           t.UpdatedAt(),
	}
}
