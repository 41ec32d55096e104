package payment

import (
	"github.com/shopspring/decimal"

	ticketvo "rosecraft/internal/domain/ticket/valueobjects"
)

// ReconcileResult is the derived payment state for a ticket computed from
// its surviving payment rows.
type ReconcileResult struct {
	AmountPaid decimal.Decimal
	Status     ticketvo.PaymentStatus
}

// Reconcile recomputes a ticket's paid total and payment status from the
// full set of its non-deleted payment rows. It is pure and idempotent: the
// result depends only on the rows and the total, never on the ticket's
// previously stored values.
//
// Only posted rows count. When the current status is awaiting_verification
// the recomputed status is discarded and the flag preserved, so staff review
// of an online payment proof is never silently cleared.
func Reconcile(
	payments []*Payment,
	totalAmount decimal.Decimal,
	currentStatus ticketvo.PaymentStatus,
) ReconcileResult {
	paid := decimal.Zero
	for _, p := range payments {
		if p.Status().IsPosted() {
			paid = paid.Add(p.Amount())
		}
	}
	paid = paid.Round(2)

	status := deriveStatus(paid, totalAmount)
	if currentStatus.IsAwaitingVerification() {
		status = ticketvo.PaymentAwaitingVerification
	}

	return ReconcileResult{AmountPaid: paid, Status: status}
}

func deriveStatus(paid, total decimal.Decimal) ticketvo.PaymentStatus {
	switch {
	// Free tickets with any recorded payment still settle as paid.
	case !total.IsPositive() && paid.IsPositive():
		return ticketvo.PaymentPaid
	case total.IsPositive() && paid.GreaterThanOrEqual(total):
		return ticketvo.PaymentPaid
	case paid.IsPositive() && paid.LessThan(total):
		return ticketvo.PaymentPartial
	default:
		return ticketvo.PaymentPending
	}
}
