package mappers

import (
	"encoding/json"
	"fmt"

	"rosecraft/internal/domain/ticket"
	vo "rosecraft/internal/domain/ticket/valueobjects"
	"rosecraft/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
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
		Status:              t.Status().String(),
		PaymentStatus:       t.PaymentStatus().String(),
		DesignStatus:        t.DesignStatus().String(),
		CurrentWorkflowStep: t.CurrentWorkflowStep(),
		WorkflowStartedAt:   t.WorkflowStartedAt(),
		WorkflowCompletedAt: t.WorkflowCompletedAt(),
		IsWorkflowCompleted: t.IsWorkflowCompleted(),
		Remarks:             t.Remarks(),
		IsOnlineOrder:       t.IsOnlineOrder(),
		CreatedBy:           t.CreatedBy(),
		Version:             t.Version(),
		CreatedAt:           t.CreatedAt(),
		UpdatedAt:           t.UpdatedAt(),
	}

	if steps := t.CustomWorkflowSteps(); len(steps) > 0 {
		stepsJSON, _ := json.Marshal(steps)
		model.CustomWorkflowSteps = stepsJSON
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, _ := vo.NewTicketStatus(model.Status)
	paymentStatus, _ := vo.NewPaymentStatus(model.PaymentStatus)
	designStatus, _ := vo.NewDesignStatus(model.DesignStatus)

	var customSteps []string
	if len(model.CustomWorkflowSteps) > 0 {
		if err := json.Unmarshal(model.CustomWorkflowSteps, &customSteps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket custom workflow steps (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.CustomerID,
		model.OrderBranchID,
		model.ProductionBranchID,
		model.JobTypeID,
		model.Quantity,
		model.FreeQuantity,
		model.ProducedQuantity,
		model.SizeValue,
		model.SizeUnit,
		model.Subtotal,
		model.DiscountPercent,
		model.DiscountAmount,
		model.TotalAmount,
		model.Downpayment,
		model.AmountPaid,
		status,
		paymentStatus,
		designStatus,
		model.CurrentWorkflowStep,
		customSteps,
		model.WorkflowStartedAt,
		model.WorkflowCompletedAt,
		model.IsWorkflowCompleted,
		model.Remarks,
		model.IsOnlineOrder,
		model.CreatedBy,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
