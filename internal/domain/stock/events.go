package stock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"rosecraft/internal/domain/shared/events"
)

const EventStockBelowMinimum = "stock.below_minimum"

// BelowMinimumEvent fires when a deduction leaves an item under its
// minimum threshold.
type BelowMinimumEvent struct {
	events.BaseEvent
	StockItemID  uint
	Name         string
	CurrentStock decimal.Decimal
	MinimumStock decimal.Decimal
}

func NewBelowMinimumEvent(item *StockItem) *BelowMinimumEvent {
	return &BelowMinimumEvent{
		BaseEvent:    events.NewBaseEvent(EventStockBelowMinimum, fmt.Sprintf("%d", item.ID())),
		StockItemID:  item.ID(),
		Name:         item.Name(),
		CurrentStock: item.CurrentStock(),
		MinimumStock: item.MinimumStock(),
	}
}
