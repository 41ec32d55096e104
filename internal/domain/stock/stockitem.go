package stock

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "rosecraft/internal/domain/stock/valueobjects"
)

// StockItem is one material tracked in inventory. Every change to
// current_stock goes through Receive, Consume, or Adjust, each of which
// emits a ledger Movement carrying before/after snapshots.
type StockItem struct {
	id              uint
	name            string
	sku             string
	unit            string
	measurementType vo.MeasurementType
	currentStock    decimal.Decimal
	minimumStock    decimal.Decimal
	maximumStock    decimal.Decimal
	unitCost        decimal.Decimal
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewStockItem(name, sku, unit string, measurementType vo.MeasurementType, minimumStock, maximumStock, unitCost decimal.Decimal) (*StockItem, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("stock item name is required")
	}
	if !measurementType.IsValid() {
		return nil, fmt.Errorf("invalid measurement type: %s", measurementType)
	}
	if minimumStock.IsNegative() {
		return nil, fmt.Errorf("minimum stock cannot be negative")
	}
	if maximumStock.IsPositive() && maximumStock.LessThan(minimumStock) {
		return nil, fmt.Errorf("maximum stock cannot be below minimum stock")
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost cannot be negative")
	}

	now := time.Now().UTC()
	return &StockItem{
		name:            name,
		sku:             sku,
		unit:            unit,
		measurementType: measurementType,
		currentStock:    decimal.Zero,
		minimumStock:    minimumStock,
		maximumStock:    maximumStock,
		unitCost:        unitCost,
		isActive:        true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructStockItem(
	id uint,
	name, sku, unit string,
	measurementType vo.MeasurementType,
	currentStock, minimumStock, maximumStock, unitCost decimal.Decimal,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*StockItem, error) {
	if id == 0 {
		return nil, fmt.Errorf("stock item ID cannot be zero")
	}
	if !measurementType.IsValid() {
		return nil, fmt.Errorf("invalid measurement type: %s", measurementType)
	}
	return &StockItem{
		id:              id,
		name:            name,
		sku:             sku,
		unit:            unit,
		measurementType: measurementType,
		currentStock:    currentStock,
		minimumStock:    minimumStock,
		maximumStock:    maximumStock,
		unitCost:        unitCost,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (s *StockItem) ID() uint                            { return s.id }
func (s *StockItem) Name() string                        { return s.name }
func (s *StockItem) SKU() string                         { return s.sku }
func (s *StockItem) Unit() string                        { return s.unit }
func (s *StockItem) MeasurementType() vo.MeasurementType { return s.measurementType }
func (s *StockItem) CurrentStock() decimal.Decimal       { return s.currentStock }
func (s *StockItem) MinimumStock() decimal.Decimal       { return s.minimumStock }
func (s *StockItem) MaximumStock() decimal.Decimal       { return s.maximumStock }
func (s *StockItem) UnitCost() decimal.Decimal           { return s.unitCost }
func (s *StockItem) IsActive() bool                      { return s.isActive }
func (s *StockItem) CreatedAt() time.Time                { return s.createdAt }
func (s *StockItem) UpdatedAt() time.Time                { return s.updatedAt }

func (s *StockItem) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("stock item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("stock item ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *StockItem) IsBelowMinimum() bool {
	return s.currentStock.LessThan(s.minimumStock)
}

// IsAreaMeasured reports whether consumption scales with printed area.
func (s *StockItem) IsAreaMeasured() bool {
	return s.measurementType.IsAreaBased()
}

// Receive adds purchased stock and returns the ledger movement.
func (s *StockItem) Receive(quantity decimal.Decimal, ref Reference, performedBy *uint, notes string) (*Movement, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("received quantity must be positive")
	}

	before := s.currentStock
	s.currentStock = s.currentStock.Add(quantity)
	s.touch()

	return newMovement(s.id, vo.MovementReceipt, quantity, before, s.currentStock, ref, performedBy, notes)
}

// Consume deducts material used in production. Stock may go negative; the
// shop records actual usage even when counts have drifted.
func (s *StockItem) Consume(quantity decimal.Decimal, ref Reference, performedBy *uint, notes string) (*Movement, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("consumed quantity must be positive")
	}

	before := s.currentStock
	s.currentStock = s.currentStock.Sub(quantity)
	s.touch()

	return newMovement(s.id, vo.MovementConsumption, quantity.Neg(), before, s.currentStock, ref, performedBy, notes)
}

// Adjust sets the count to what a physical recount found and records the
// delta as a movement. A zero delta yields no movement.
func (s *StockItem) Adjust(newCount decimal.Decimal, ref Reference, performedBy *uint, notes string) (*Movement, error) {
	if newCount.IsNegative() {
		return nil, fmt.Errorf("adjusted count cannot be negative")
	}

	delta := newCount.Sub(s.currentStock)
	if delta.IsZero() {
		return nil, nil
	}

	before := s.currentStock
	s.currentStock = newCount
	s.touch()

	return newMovement(s.id, vo.MovementAdjustment, delta, before, s.currentStock, ref, performedBy, notes)
}

func (s *StockItem) SetUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return fmt.Errorf("unit cost cannot be negative")
	}
	s.unitCost = cost
	s.touch()
	return nil
}

func (s *StockItem) SetThresholds(minimum, maximum decimal.Decimal) error {
	if minimum.IsNegative() {
		return fmt.Errorf("minimum stock cannot be negative")
	}
	if maximum.IsPositive() && maximum.LessThan(minimum) {
		return fmt.Errorf("maximum stock cannot be below minimum stock")
	}
	s.minimumStock = minimum
	s.maximumStock = maximum
	s.touch()
	return nil
}

func (s *StockItem) Deactivate() {
	s.isActive = false
	s.touch()
}

func (s *StockItem) touch() {
	s.updatedAt = time.Now().UTC()
}
