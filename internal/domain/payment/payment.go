package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "rosecraft/internal/domain/payment/valueobjects"
)

// Payment is one row in a ticket's payment history. Rows are soft-deleted,
// never hard-deleted, so the ledger stays auditable. Balance snapshots
// record the ticket balance around the row at the time it was taken; they
// are historical context only and are never read back into reconciliation.
type Payment struct {
	id       uint
	ticketID uint

	amount      decimal.Decimal
	paymentType vo.PaymentType
	allocation  vo.Allocation
	status      vo.Status
	method      string
	referenceNo string
	notes       string

	balanceBefore decimal.Decimal
	balanceAfter  decimal.Decimal

	receivedBy *uint
	receivedAt time.Time

	createdAt time.Time
	updatedAt time.Time
}

func NewPayment(
	ticketID uint,
	amount decimal.Decimal,
	paymentType vo.PaymentType,
	allocation vo.Allocation,
	method string,
	receivedBy *uint,
	receivedAt time.Time,
) (*Payment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !paymentType.IsValid() {
		return nil, fmt.Errorf("invalid payment type: %s", paymentType)
	}
	if !allocation.IsValid() {
		return nil, fmt.Errorf("invalid allocation: %s", allocation)
	}
	if paymentType.IsCollection() && !amount.IsPositive() {
		return nil, fmt.Errorf("collection amount must be positive")
	}
	if paymentType.IsRefund() && amount.IsPositive() {
		return nil, fmt.Errorf("refund amount must not be positive")
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("payment amount cannot be zero")
	}
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	now := time.Now().UTC()
	return &Payment{
		ticketID:    ticketID,
		amount:      amount,
		paymentType: paymentType,
		allocation:  allocation,
		status:      vo.StatusPosted,
		method:      method,
		receivedBy:  receivedBy,
		receivedAt:  receivedAt,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPayment(
	id, ticketID uint,
	amount decimal.Decimal,
	paymentType vo.PaymentType,
	allocation vo.Allocation,
	status vo.Status,
	method, referenceNo, notes string,
	balanceBefore, balanceAfter decimal.Decimal,
	receivedBy *uint,
	receivedAt, createdAt, updatedAt time.Time,
) (*Payment, error) {
	if id == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if !paymentType.IsValid() {
		return nil, fmt.Errorf("invalid payment type: %s", paymentType)
	}
	if !allocation.IsValid() {
		return nil, fmt.Errorf("invalid allocation: %s", allocation)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", status)
	}

	return &Payment{
		id:            id,
		ticketID:      ticketID,
		amount:        amount,
		paymentType:   paymentType,
		allocation:    allocation,
		status:        status,
		method:        method,
		referenceNo:   referenceNo,
		notes:         notes,
		balanceBefore: balanceBefore,
		balanceAfter:  balanceAfter,
		receivedBy:    receivedBy,
		receivedAt:    receivedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Payment) ID() uint                       { return p.id }
func (p *Payment) TicketID() uint                 { return p.ticketID }
func (p *Payment) Amount() decimal.Decimal        { return p.amount }
func (p *Payment) PaymentType() vo.PaymentType    { return p.paymentType }
func (p *Payment) Allocation() vo.Allocation      { return p.allocation }
func (p *Payment) Status() vo.Status              { return p.status }
func (p *Payment) Method() string                 { return p.method }
func (p *Payment) ReferenceNo() string            { return p.referenceNo }
func (p *Payment) Notes() string                  { return p.notes }
func (p *Payment) BalanceBefore() decimal.Decimal { return p.balanceBefore }
func (p *Payment) BalanceAfter() decimal.Decimal  { return p.balanceAfter }
func (p *Payment) ReceivedBy() *uint              { return p.receivedBy }
func (p *Payment) ReceivedAt() time.Time          { return p.receivedAt }
func (p *Payment) CreatedAt() time.Time           { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time           { return p.updatedAt }

func (p *Payment) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Payment) SetReferenceNo(ref string) {
	p.referenceNo = ref
	p.touch()
}

func (p *Payment) SetNotes(notes string) {
	p.notes = notes
	p.touch()
}

// SnapshotBalances records the ticket balance around this row at the time
// it was taken. Informational only.
func (p *Payment) SnapshotBalances(before, after decimal.Decimal) {
	p.balanceBefore = before
	p.balanceAfter = after
	p.touch()
}

// ChangeAmount corrects a mis-keyed amount. The sign rules of the payment
// type still apply.
func (p *Payment) ChangeAmount(amount decimal.Decimal) error {
	if amount.IsZero() {
		return fmt.Errorf("payment amount cannot be zero")
	}
	if p.paymentType.IsCollection() && !amount.IsPositive() {
		return fmt.Errorf("collection amount must be positive")
	}
	if p.paymentType.IsRefund() && amount.IsPositive() {
		return fmt.Errorf("refund amount must not be positive")
	}
	p.amount = amount
	p.touch()
	return nil
}

// MarkPendingVerification parks the row until staff verify the payment
// proof. Pending rows do not count toward the ticket's paid total.
func (p *Payment) MarkPendingVerification() error {
	if p.status == vo.StatusPending {
		return nil
	}
	if p.status == vo.StatusRejected {
		return fmt.Errorf("cannot reopen a rejected payment")
	}
	p.status = vo.StatusPending
	p.touch()
	return nil
}

func (p *Payment) MarkPosted() error {
	if p.status.IsPosted() {
		return nil
	}
	p.status = vo.StatusPosted
	p.touch()
	return nil
}

func (p *Payment) MarkRejected() error {
	if p.status == vo.StatusRejected {
		return nil
	}
	p.status = vo.StatusRejected
	p.touch()
	return nil
}

func (p *Payment) touch() {
	p.updatedAt = time.Now().UTC()
}
