package stock

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "rosecraft/internal/domain/stock/valueobjects"
)

// Reference tags a movement with its source record.
type Reference struct {
	Kind vo.ReferenceKind
	ID   uint
}

func TicketReference(ticketID uint) Reference {
	return Reference{Kind: vo.ReferenceTicket, ID: ticketID}
}

func PurchaseReference(receiptID uint) Reference {
	return Reference{Kind: vo.ReferencePurchaseReceipt, ID: receiptID}
}

func ManualReference() Reference {
	return Reference{Kind: vo.ReferenceManual}
}

// Movement is one immutable row of the stock ledger. Quantity is signed:
// positive for receipts and upward adjustments, negative for consumption.
// Before/after snapshots make drift audits possible without replaying the
// whole ledger.
type Movement struct {
	id            uint
	stockItemID   uint
	movementType  vo.MovementType
	quantity      decimal.Decimal
	stockBefore   decimal.Decimal
	stockAfter    decimal.Decimal
	referenceKind vo.ReferenceKind
	referenceID   uint
	performedBy   *uint
	notes         string
	createdAt     time.Time
}

func newMovement(
	stockItemID uint,
	movementType vo.MovementType,
	quantity, stockBefore, stockAfter decimal.Decimal,
	ref Reference,
	performedBy *uint,
	notes string,
) (*Movement, error) {
	if !movementType.IsValid() {
		return nil, fmt.Errorf("invalid movement type: %s", movementType)
	}
	if !ref.Kind.IsValid() {
		return nil, fmt.Errorf("invalid movement reference kind: %s", ref.Kind)
	}

	return &Movement{
		stockItemID:   stockItemID,
		movementType:  movementType,
		quantity:      quantity,
		stockBefore:   stockBefore,
		stockAfter:    stockAfter,
		referenceKind: ref.Kind,
		referenceID:   ref.ID,
		performedBy:   performedBy,
		notes:         notes,
		createdAt:     time.Now().UTC(),
	}, nil
}

func ReconstructMovement(
	id, stockItemID uint,
	movementType vo.MovementType,
	quantity, stockBefore, stockAfter decimal.Decimal,
	referenceKind vo.ReferenceKind,
	referenceID uint,
	performedBy *uint,
	notes string,
	createdAt time.Time,
) (*Movement, error) {
	if id == 0 {
		return nil, fmt.Errorf("movement ID cannot be zero")
	}
	return &Movement{
		id:            id,
		stockItemID:   stockItemID,
		movementType:  movementType,
		quantity:      quantity,
		stockBefore:   stockBefore,
		stockAfter:    stockAfter,
		referenceKind: referenceKind,
		referenceID:   referenceID,
		performedBy:   performedBy,
		notes:         notes,
		createdAt:     createdAt,
	}, nil
}

func (m *Movement) ID() uint                         { return m.id }
func (m *Movement) StockItemID() uint                { return m.stockItemID }
func (m *Movement) MovementType() vo.MovementType    { return m.movementType }
func (m *Movement) Quantity() decimal.Decimal        { return m.quantity }
func (m *Movement) StockBefore() decimal.Decimal     { return m.stockBefore }
func (m *Movement) StockAfter() decimal.Decimal      { return m.stockAfter }
func (m *Movement) ReferenceKind() vo.ReferenceKind  { return m.referenceKind }
func (m *Movement) ReferenceID() uint                { return m.referenceID }
func (m *Movement) PerformedBy() *uint               { return m.performedBy }
func (m *Movement) Notes() string                    { return m.notes }
func (m *Movement) CreatedAt() time.Time             { return m.createdAt }

func (m *Movement) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("movement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("movement ID cannot be zero")
	}
	m.id = id
	return nil
}
