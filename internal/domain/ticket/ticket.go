package ticket

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "rosecraft/internal/domain/ticket/valueobjects"
)

// Ticket is one customer print job order, the root aggregate of this core.
// Money fields are decimals; amount_paid and payment_status are derived
// projections written only through ApplyReconciliation, and the workflow
// fields only through the workflow methods, so each derived concern has one
// write path.
type Ticket struct {
	id                 uint
	number             string
	customerID         uint
	orderBranchID      *uint
	productionBranchID *uint
	jobTypeID          *uint

	quantity         int
	freeQuantity     int
	producedQuantity int
	sizeValue        string
	sizeUnit         string

	subtotal        decimal.Decimal
	discountPercent decimal.Decimal
	discountAmount  decimal.Decimal
	totalAmount     decimal.Decimal
	downpayment     decimal.Decimal
	amountPaid      decimal.Decimal

	status        vo.TicketStatus
	paymentStatus vo.PaymentStatus
	designStatus  vo.DesignStatus

	currentWorkflowStep *string
	customWorkflowSteps []string
	workflowStartedAt   *time.Time
	workflowCompletedAt *time.Time
	isWorkflowCompleted bool

	remarks       string
	isOnlineOrder bool
	createdBy     *uint

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewTicket creates a ticket at intake. jobTypeID is nil for custom jobs;
// createdBy is nil for the unauthenticated public-order flow.
func NewTicket(
	customerID uint,
	jobTypeID *uint,
	quantity int,
	sizeValue, sizeUnit string,
	isOnlineOrder bool,
	createdBy *uint,
) (*Ticket, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if jobTypeID != nil && *jobTypeID == 0 {
		return nil, fmt.Errorf("job type ID cannot be zero")
	}

	now := time.Now().UTC()
	return &Ticket{
		customerID:    customerID,
		jobTypeID:     jobTypeID,
		quantity:      quantity,
		sizeValue:     sizeValue,
		sizeUnit:      sizeUnit,
		status:        vo.StatusPending,
		paymentStatus: vo.PaymentPending,
		designStatus:  vo.DesignPending,
		isOnlineOrder: isOnlineOrder,
		createdBy:     createdBy,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	customerID uint,
	orderBranchID, productionBranchID, jobTypeID *uint,
	quantity, freeQuantity, producedQuantity int,
	sizeValue, sizeUnit string,
	subtotal, discountPercent, discountAmount, totalAmount, downpayment, amountPaid decimal.Decimal,
	status vo.TicketStatus,
	paymentStatus vo.PaymentStatus,
	designStatus vo.DesignStatus,
	currentWorkflowStep *string,
	customWorkflowSteps []string,
	workflowStartedAt, workflowCompletedAt *time.Time,
	isWorkflowCompleted bool,
	remarks string,
	isOnlineOrder bool,
	createdBy *uint,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status")
	}
	if !designStatus.IsValid() {
		return nil, fmt.Errorf("invalid design status")
	}

	return &Ticket{
		id:                  id,
		number:              number,
		customerID:          customerID,
		orderBranchID:       orderBranchID,
		productionBranchID:  productionBranchID,
		jobTypeID:           jobTypeID,
		quantity:            quantity,
		freeQuantity:        freeQuantity,
		producedQuantity:    producedQuantity,
		sizeValue:           sizeValue,
		sizeUnit:            sizeUnit,
		subtotal:            subtotal,
		discountPercent:     discountPercent,
		discountAmount:      discountAmount,
		totalAmount:         totalAmount,
		downpayment:         downpayment,
		amountPaid:          amountPaid,
		status:              status,
		paymentStatus:       paymentStatus,
		designStatus:        designStatus,
		currentWorkflowStep: currentWorkflowStep,
		customWorkflowSteps: customWorkflowSteps,
		workflowStartedAt:   workflowStartedAt,
		workflowCompletedAt: workflowCompletedAt,
		isWorkflowCompleted: isWorkflowCompleted,
		remarks:             remarks,
		isOnlineOrder:       isOnlineOrder,
		createdBy:           createdBy,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (t *Ticket) ID() uint { return t.id }
func (t *Ticket) Number() string { return t.number }
func (t *Ticket) CustomerID() uint { return t.customerID }
func (t *Ticket) OrderBranchID() *uint { return t.orderBranchID }
func (t *Ticket) ProductionBranchID() *uint { return t.productionBranchID }
func (t *Ticket) JobTypeID() *uint { return t.jobTypeID }
func (t *Ticket) Quantity() int { return t.quantity }
func (t *Ticket) FreeQuantity() int { return t.freeQuantity }
func (t *Ticket) ProducedQuantity() int { return t.producedQuantity }
func (t *Ticket) SizeValue() string { return t.sizeValue }
func (t *Ticket) SizeUnit() string { return t.sizeUnit }
func (t *Ticket) Subtotal() decimal.Decimal { return t.subtotal }
func (t *Ticket) DiscountPercent() decimal.Decimal { return t.discountPercent }
func (t *Ticket) DiscountAmount() decimal.Decimal { return t.discountAmount }
func (t *Ticket) TotalAmount() decimal.Decimal { return t.totalAmount }
func (t *Ticket) Downpayment() decimal.Decimal { return t.downpayment }
func (t *Ticket) AmountPaid() decimal.Decimal { return t.amountPaid }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) PaymentStatus() vo.PaymentStatus { return t.paymentStatus }
func (t *Ticket) DesignStatus() vo.DesignStatus { return t.designStatus }
func (t *Ticket) CurrentWorkflowStep() *string { return t.currentWorkflowStep }
func (t *Ticket) WorkflowStartedAt() *time.Time { return t.workflowStartedAt }
func (t *Ticket) WorkflowCompletedAt() *time.Time { return t.workflowCompletedAt }
func (t *Ticket) IsWorkflowCompleted() bool { return t.isWorkflowCompleted }
func (t *Ticket) Remarks() string { return t.remarks }
func (t *Ticket) IsOnlineOrder() bool { return t.isOnlineOrder }
func (t *Ticket) CreatedBy() *uint { return t.createdBy }
func (t *Ticket) Version() int { return t.version }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

func (t *Ticket) CustomWorkflowSteps() []string {
	steps := make([]string, len(t.customWorkflowSteps))
	copy(steps, t.customWorkflowSteps)
	return steps
}

// OrderableQuantity is the quantity production must deliver: ordered plus
// promotional free units.
func (t *Ticket) OrderableQuantity() int {
	return t.quantity + t.freeQuantity
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// AssignBranches sets the branch fields once at creation. Branch fields are
// immutable for the life of the ticket.
func (t *Ticket) AssignBranches(orderBranchID, productionBranchID *uint) error {
	if t.orderBranchID != nil || t.productionBranchID != nil {
		return fmt.Errorf("branches are already assigned")
	}
	t.orderBranchID = orderBranchID
	t.productionBranchID = productionBranchID
	return nil
}

// ChangeQuantity updates the ordered quantity. Pricing and free units become
// stale and must be refreshed through ApplyPricing before the ticket is
// persisted.
func (t *Ticket) ChangeQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot change quantity of a %s ticket", t.status)
	}
	t.quantity = quantity
	t.touch()
	return nil
}

// ApplyPricing writes the pricing projection. This is the only path that
// mutates subtotal, discounts, total, free quantity, and the resolved size
// descriptor.
func (t *Ticket) ApplyPricing(
	subtotal, discountPercent, discountAmount, totalAmount decimal.Decimal,
	freeQuantity int,
	sizeValue, sizeUnit string,
) error {
	if totalAmount.IsNegative() {
		return fmt.Errorf("total amount cannot be negative")
	}
	if freeQuantity < 0 {
		return fmt.Errorf("free quantity cannot be negative")
	}
	t.subtotal = subtotal
	t.discountPercent = discountPercent
	t.discountAmount = discountAmount
	t.totalAmount = totalAmount
	t.freeQuantity = freeQuantity
	t.sizeValue = sizeValue
	t.sizeUnit = sizeUnit
	t.touch()
	return nil
}

func (t *Ticket) SetDownpayment(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("downpayment cannot be negative")
	}
	t.downpayment = amount
	t.touch()
	return nil
}

// ApplyReconciliation writes the derived payment projection. It is not a
// user edit: callers must persist it without touching audit bookkeeping,
// and it must never be invoked from within itself via a persistence hook.
func (t *Ticket) ApplyReconciliation(amountPaid decimal.Decimal, status vo.PaymentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid payment status: %s", status)
	}
	t.amountPaid = amountPaid
	t.paymentStatus = status
	return nil
}

// MarkAwaitingVerification flags the ticket as pending manual verification
// of an online payment proof. Reconciliation keeps amount_paid current but
// will not move the status off this state.
func (t *Ticket) MarkAwaitingVerification() error {
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot flag a %s ticket for verification", t.status)
	}
	t.paymentStatus = vo.PaymentAwaitingVerification
	t.touch()
	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	// Artwork must be approved before the ticket leaves the designer.
	if t.status.IsInDesigner() && newStatus.IsReadyToPrint() && !t.designStatus.IsApproved() {
		return fmt.Errorf("design is not approved")
	}

	t.status = newStatus
	t.touch()
	t.version++
	return nil
}

func (t *Ticket) ChangeDesignStatus(newStatus vo.DesignStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid design status: %s", newStatus)
	}
	if t.designStatus == newStatus {
		return nil
	}
	if !t.designStatus.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot move design from %s to %s", t.designStatus, newStatus)
	}
	t.designStatus = newStatus
	t.touch()
	return nil
}

func (t *Ticket) Cancel() error {
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot cancel a %s ticket", t.status)
	}
	t.status = vo.StatusCancelled
	t.touch()
	t.version++
	return nil
}

// SetCustomWorkflowSteps overrides the job type's step sequence for this
// ticket. Only allowed before production starts.
func (t *Ticket) SetCustomWorkflowSteps(steps []string) error {
	if t.workflowStartedAt != nil {
		return fmt.Errorf("workflow already started")
	}
	for _, s := range steps {
		if len(s) == 0 {
			return fmt.Errorf("workflow step key cannot be empty")
		}
	}
	t.customWorkflowSteps = append([]string(nil), steps...)
	t.touch()
	return nil
}

// MarkWorkflowStarted stamps workflow_started_at the first time any step
// records progress. Idempotent.
func (t *Ticket) MarkWorkflowStarted(at time.Time) {
	if t.workflowStartedAt == nil {
		started := at
		t.workflowStartedAt = &started
		t.touch()
	}
}

// SetCurrentWorkflowStep writes the derived current-step projection. nil
// means every step in the sequence is complete.
func (t *Ticket) SetCurrentWorkflowStep(stepKey *string) {
	t.currentWorkflowStep = stepKey
	t.touch()
}

// CompleteWorkflow finishes production: the ticket moves to completed, the
// completion flag and timestamp are set, and produced quantity is recorded.
func (t *Ticket) CompleteWorkflow(at time.Time, producedQuantity int) error {
	if t.isWorkflowCompleted {
		return nil
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot complete workflow of a %s ticket", t.status)
	}

	if !t.status.IsInProduction() {
		// Tickets can complete straight from ready_to_print when the first
		// recorded progress already covers the full quantity.
		if err := t.advanceToProduction(); err != nil {
			return err
		}
	}
	if err := t.ChangeStatus(vo.StatusCompleted); err != nil {
		return err
	}

	completed := at
	t.workflowCompletedAt = &completed
	t.isWorkflowCompleted = true
	t.producedQuantity = producedQuantity
	t.currentWorkflowStep = nil
	return nil
}

// MarkInProduction moves the ticket into production when the first step
// progress is recorded from ready_to_print.
func (t *Ticket) MarkInProduction() error {
	if t.status.IsInProduction() {
		return nil
	}
	return t.advanceToProduction()
}

func (t *Ticket) advanceToProduction() error {
	if !t.status.IsReadyToPrint() {
		return fmt.Errorf("cannot start production from %s", t.status)
	}
	return t.ChangeStatus(vo.StatusInProduction)
}

func (t *Ticket) SetProducedQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("produced quantity cannot be negative")
	}
	if quantity > t.OrderableQuantity() {
		return fmt.Errorf("produced quantity %d exceeds orderable quantity %d", quantity, t.OrderableQuantity())
	}
	t.producedQuantity = quantity
	t.touch()
	return nil
}

// SetRemarks stores staff remarks. The caller sanitizes before storage.
func (t *Ticket) SetRemarks(remarks string) {
	t.remarks = remarks
	t.touch()
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now().UTC()
}
