package jobtype

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// QuoteParams are the order parameters fed into pricing. Width and height
// are only meaningful for size-based job types; SizeVariant selects a size
// rate by variant name (nil means the default variant). SizeValue/SizeUnit
// carry the caller-supplied size descriptor, which size-based pricing
// overwrites with the resolved label.
type QuoteParams struct {
	Quantity        int
	Width           *decimal.Decimal
	Height          *decimal.Decimal
	SizeVariant     *string
	SizeValue       string
	SizeUnit        string
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
}

// Quote is the result of pricing an order against a job type. A size-based
// quote with missing dimensions has a zero subtotal and must be treated as
// incomplete by the caller, not as a priced order.
type Quote struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	FreeQuantity   int
	SizeValue      string
	SizeUnit       string
}

// Quote prices an order. Strategies are mutually exclusive per job type and
// checked in priority order: size-based, then quantity-tiered, then flat.
// Promotional free units are resolved independently of the strategy.
// Missing dimensions never raise an error here; validation is a caller
// concern.
func (j *JobType) Quote(params QuoteParams) (Quote, error) {
	if params.Quantity <= 0 {
		return Quote{}, fmt.Errorf("quantity must be positive")
	}

	quantity := decimal.NewFromInt(int64(params.Quantity))
	quote := Quote{
		SizeValue: params.SizeValue,
		SizeUnit:  params.SizeUnit,
	}

	switch {
	case len(j.sizeRates) > 0:
		rate := j.resolveSizeRate(params.SizeVariant)
		quote.SizeUnit = rate.DimensionUnit

		width := decimal.Zero
		if params.Width != nil {
			width = *params.Width
		}
		height := decimal.Zero
		if params.Height != nil {
			height = *params.Height
		}

		if rate.CalculationMethod.IsLength() {
			// Only width is required for linear pricing.
			quote.Subtotal = width.Mul(rate.Rate).Mul(quantity)
			quote.SizeValue = fmt.Sprintf("%s %s", width.String(), rate.DimensionUnit)
		} else {
			// Area pricing with a missing or zero dimension yields a zero
			// subtotal; the order stays incomplete until both are supplied.
			quote.Subtotal = width.Mul(height).Mul(rate.Rate).Mul(quantity)
			quote.SizeValue = fmt.Sprintf("%s x %s", width.String(), height.String())
		}

	case len(j.priceTiers) > 0:
		unitPrice := j.price
		if tier, ok := j.resolveTier(params.Quantity); ok {
			unitPrice = tier.Price
		}
		quote.Subtotal = unitPrice.Mul(quantity)

	default:
		quote.Subtotal = j.price.Mul(quantity)
	}

	quote.Subtotal = quote.Subtotal.Round(2)
	quote.FreeQuantity = j.FreeUnits(params.Quantity)

	quote.DiscountAmount = resolveDiscount(quote.Subtotal, params.DiscountPercent, params.DiscountAmount)
	quote.TotalAmount = quote.Subtotal.Sub(quote.DiscountAmount)
	// Over-discounting floors the total at zero; it never goes negative.
	if quote.TotalAmount.IsNegative() {
		quote.TotalAmount = decimal.Zero
	}

	return quote, nil
}

// resolveSizeRate picks the size variant: the explicitly chosen one, else
// the variant flagged as default, else the first variant.
func (j *JobType) resolveSizeRate(variantName *string) SizeRate {
	if variantName != nil {
		for _, r := range j.sizeRates {
			if r.VariantName == *variantName {
				return r
			}
		}
	}
	for _, r := range j.sizeRates {
		if r.IsDefault {
			return r
		}
	}
	return j.sizeRates[0]
}

// resolveTier scans tiers sorted ascending by min_quantity and keeps the
// last qualifying match, so overlapping ranges resolve to the tier with the
// largest qualifying min_quantity.
func (j *JobType) resolveTier(quantity int) (PriceTier, bool) {
	var matched PriceTier
	found := false
	for _, tier := range j.priceTiers {
		if quantity < tier.MinQuantity {
			continue
		}
		if tier.MaxQuantity != nil && quantity > *tier.MaxQuantity {
			continue
		}
		matched = tier
		found = true
	}
	return matched, found
}

// FreeUnits resolves promotional free units for an ordered quantity: among
// active rules it keeps the last qualifying match in ascending buy_quantity
// order, then grants floor(quantity / buy_quantity) * free_quantity.
// Always recomputed from the current quantity; never left stale.
func (j *JobType) FreeUnits(quantity int) int {
	var matched *PromoRule
	for i := range j.promoRules {
		rule := &j.promoRules[i]
		if !rule.IsActive {
			continue
		}
		if quantity >= rule.BuyQuantity {
			matched = rule
		}
	}
	if matched == nil {
		return 0
	}
	return (quantity / matched.BuyQuantity) * matched.FreeQuantity
}

// resolveDiscount prefers the explicit amount when present and nonzero,
// falling back to the percentage of the subtotal.
func resolveDiscount(subtotal, percent, amount decimal.Decimal) decimal.Decimal {
	if !amount.IsZero() {
		return amount.Round(2)
	}
	if percent.IsZero() {
		return decimal.Zero
	}
	return subtotal.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
}
