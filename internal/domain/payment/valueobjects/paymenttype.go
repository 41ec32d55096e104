package valueobjects

import "fmt"

// PaymentType classifies a payment row. Collections add to the paid total,
// refunds and negative adjustments subtract from it.
type PaymentType string

const (
	TypeCollection PaymentType = "collection"
	TypeRefund     PaymentType = "refund"
	TypeAdjustment PaymentType = "adjustment"
)

var validPaymentTypes = map[PaymentType]bool{
	TypeCollection: true,
	TypeRefund:     true,
	TypeAdjustment: true,
}

func (pt PaymentType) String() string {
	return string(pt)
}

func (pt PaymentType) IsValid() bool {
	return validPaymentTypes[pt]
}

func (pt PaymentType) IsCollection() bool {
	return pt == TypeCollection
}

func (pt PaymentType) IsRefund() bool {
	return pt == TypeRefund
}

func NewPaymentType(s string) (PaymentType, error) {
	pt := PaymentType(s)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid payment type: %s", s)
	}
	return pt, nil
}
