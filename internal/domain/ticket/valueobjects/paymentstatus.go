package valueobjects

import "fmt"

// PaymentStatus is the derived payment state of a ticket. It is recomputed
// by reconciliation, never hand-written, except for awaiting_verification
// which staff set while checking an online payment proof and which
// reconciliation must not overwrite.
type PaymentStatus string

const (
	PaymentPending              PaymentStatus = "pending"
	PaymentPartial              PaymentStatus = "partial"
	PaymentPaid                 PaymentStatus = "paid"
	PaymentAwaitingVerification PaymentStatus = "awaiting_verification"
)

var validPaymentStatuses = map[PaymentStatus]bool{
	PaymentPending:              true,
	PaymentPartial:              true,
	PaymentPaid:                 true,
	PaymentAwaitingVerification: true,
}

func (ps PaymentStatus) String() string {
	return string(ps)
}

func (ps PaymentStatus) IsValid() bool {
	return validPaymentStatuses[ps]
}

func (ps PaymentStatus) IsPaid() bool {
	return ps == PaymentPaid
}

func (ps PaymentStatus) IsAwaitingVerification() bool {
	return ps == PaymentAwaitingVerification
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid payment status: %s", s)
	}
	return ps, nil
}
