package valueobjects

import "fmt"

// MovementType is the direction and cause of a stock ledger entry.
type MovementType string

const (
	MovementReceipt     MovementType = "receipt"
	MovementConsumption MovementType = "consumption"
	MovementAdjustment  MovementType = "adjustment"
)

var validMovementTypes = map[MovementType]bool{
	MovementReceipt:     true,
	MovementConsumption: true,
	MovementAdjustment:  true,
}

func (mt MovementType) String() string {
	return string(mt)
}

func (mt MovementType) IsValid() bool {
	return validMovementTypes[mt]
}

func NewMovementType(s string) (MovementType, error) {
	mt := MovementType(s)
	if !mt.IsValid() {
		return "", fmt.Errorf("invalid movement type: %s", s)
	}
	return mt, nil
}

// ReferenceKind tags what a movement points back at.
type ReferenceKind string

const (
	ReferenceTicket          ReferenceKind = "ticket"
	ReferencePurchaseReceipt ReferenceKind = "purchase_receipt"
	ReferenceManual          ReferenceKind = "manual"
)

var validReferenceKinds = map[ReferenceKind]bool{
	ReferenceTicket:          true,
	ReferencePurchaseReceipt: true,
	ReferenceManual:          true,
}

func (rk ReferenceKind) String() string {
	return string(rk)
}

func (rk ReferenceKind) IsValid() bool {
	return validReferenceKinds[rk]
}
