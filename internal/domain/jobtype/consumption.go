package jobtype

import (
	"github.com/shopspring/decimal"
)

// Dimensions are the linear production dimensions of a job, when known.
type Dimensions struct {
	Length decimal.Decimal
	Width  decimal.Decimal
}

// IsComplete reports whether both dimensions are supplied and positive.
func (d *Dimensions) IsComplete() bool {
	return d != nil && d.Length.IsPositive() && d.Width.IsPositive()
}

// Required returns the material quantity a requirement link consumes for a
// production quantity. Always linear.
func (r StockRequirement) Required(productionQuantity int) decimal.Decimal {
	return r.QuantityPerUnit.Mul(decimal.NewFromInt(int64(productionQuantity)))
}

// Needed returns the material quantity an average-consumption link consumes
// for a production quantity. Area-based consume types against area-measured
// stock scale by length x width when both dimensions are supplied; when they
// are not, the average is applied as a flat per-unit figure. That fallback
// exists for legacy records and must keep this exact shape. All other
// consume types are flat per-unit.
func (a AvgConsumption) Needed(productionQuantity int, dims *Dimensions, itemIsAreaMeasured bool) decimal.Decimal {
	qty := decimal.NewFromInt(int64(productionQuantity))

	if a.ConsumeType.IsAreaBased() && itemIsAreaMeasured && dims.IsComplete() {
		return dims.Length.Mul(dims.Width).Mul(a.AvgQuantityPerUnit).Mul(qty)
	}

	return a.AvgQuantityPerUnit.Mul(qty)
}

// MaterialNeed is the total quantity of one material a production run
// consumes, summed across every applicable link.
type MaterialNeed struct {
	StockItemID uint
	Quantity    decimal.Decimal
}

// MaterialNeeds computes per-material consumption for a production quantity.
// Both link models are additive: a job type declaring a requirement and an
// average link for the same material consumes the sum of both.
// itemIsAreaMeasured reports whether a stock item is area-measured; the
// caller resolves it from inventory.
func (j *JobType) MaterialNeeds(
	productionQuantity int,
	dims *Dimensions,
	itemIsAreaMeasured func(stockItemID uint) bool,
) []MaterialNeed {
	totals := make(map[uint]decimal.Decimal)
	order := make([]uint, 0, len(j.requirements)+len(j.avgConsumption))

	add := func(itemID uint, qty decimal.Decimal) {
		if _, seen := totals[itemID]; !seen {
			order = append(order, itemID)
		}
		totals[itemID] = totals[itemID].Add(qty)
	}

	for _, req := range j.requirements {
		add(req.StockItemID, req.Required(productionQuantity))
	}
	for _, avg := range j.avgConsumption {
		areaMeasured := itemIsAreaMeasured != nil && itemIsAreaMeasured(avg.StockItemID)
		add(avg.StockItemID, avg.Needed(productionQuantity, dims, areaMeasured))
	}

	needs := make([]MaterialNeed, 0, len(order))
	for _, itemID := range order {
		needs = append(needs, MaterialNeed{StockItemID: itemID, Quantity: totals[itemID]})
	}
	return needs
}
