package jobtype

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	vo "rosecraft/internal/domain/jobtype/valueobjects"
)

// JobType is a sellable service definition. It holds a flat unit price plus
// at most one of three alternative pricing strategies (size-based, tiered,
// promotional) attached as child collections, a per-step workflow
// configuration, and material consumption links.
type JobType struct {
	id             uint
	name           string
	code           string
	price          decimal.Decimal
	incentivePrice decimal.Decimal
	priceTiers     []PriceTier
	sizeRates      []SizeRate
	promoRules     []PromoRule
	workflowSteps  map[string]StepConfig
	requirements   []StockRequirement
	avgConsumption []AvgConsumption
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// PriceTier prices a quantity range: min_quantity..max_quantity (nil max is
// open-ended). Tiers never overlap in correct data, but resolution is
// defined even if they do (largest qualifying min_quantity wins).
type PriceTier struct {
	MinQuantity int
	MaxQuantity *int
	Price       decimal.Decimal
}

// SizeRate is one selectable pricing variant for size-based job types, e.g.
// different materials at different per-area rates.
type SizeRate struct {
	VariantName       string
	CalculationMethod vo.CalculationMethod
	DimensionUnit     string
	Rate              decimal.Decimal
	IsDefault         bool
}

// PromoRule grants free units: buy N get M free.
type PromoRule struct {
	BuyQuantity  int
	FreeQuantity int
	IsActive     bool
}

// StepConfig overrides workflow behavior per step for this job type. The
// map form is validated at write time so reads never branch on formats.
type StepConfig struct {
	Enabled        bool            `json:"enabled"`
	IncentivePrice decimal.Decimal `json:"incentive_price"`
}

// StockRequirement links a material consumed linearly per produced unit.
type StockRequirement struct {
	StockItemID     uint
	QuantityPerUnit decimal.Decimal
	IsRequired      bool
}

// AvgConsumption links a material through an observed average per produced
// unit, with a consume type discriminating how the average is applied.
type AvgConsumption struct {
	StockItemID        uint
	AvgQuantityPerUnit decimal.Decimal
	ConsumeType        vo.ConsumeType
}

func NewJobType(name, code string, price decimal.Decimal) (*JobType, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("job type name is required")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("job type code is required")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}

	now := time.Now().UTC()
	return &JobType{
		name:          name,
		code:          code,
		price:         price,
		workflowSteps: make(map[string]StepConfig),
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructJobType(
	id uint,
	name, code string,
	price, incentivePrice decimal.Decimal,
	priceTiers []PriceTier,
	sizeRates []SizeRate,
	promoRules []PromoRule,
	workflowSteps map[string]StepConfig,
	requirements []StockRequirement,
	avgConsumption []AvgConsumption,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*JobType, error) {
	if id == 0 {
		return nil, fmt.Errorf("job type ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("job type name is required")
	}
	if workflowSteps == nil {
		workflowSteps = make(map[string]StepConfig)
	}

	return &JobType{
		id:             id,
		name:           name,
		code:           code,
		price:          price,
		incentivePrice: incentivePrice,
		priceTiers:     priceTiers,
		sizeRates:      sizeRates,
		promoRules:     promoRules,
		workflowSteps:  workflowSteps,
		requirements:   requirements,
		avgConsumption: avgConsumption,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (j *JobType) ID() uint {
	return j.id
}

func (j *JobType) Name() string {
	return j.name
}

func (j *JobType) Code() string {
	return j.code
}

func (j *JobType) Price() decimal.Decimal {
	return j.price
}

func (j *JobType) IncentivePrice() decimal.Decimal {
	return j.incentivePrice
}

func (j *JobType) PriceTiers() []PriceTier {
	tiers := make([]PriceTier, len(j.priceTiers))
	copy(tiers, j.priceTiers)
	return tiers
}

func (j *JobType) SizeRates() []SizeRate {
	rates := make([]SizeRate, len(j.sizeRates))
	copy(rates, j.sizeRates)
	return rates
}

func (j *JobType) PromoRules() []PromoRule {
	rules := make([]PromoRule, len(j.promoRules))
	copy(rules, j.promoRules)
	return rules
}

func (j *JobType) WorkflowSteps() map[string]StepConfig {
	steps := make(map[string]StepConfig, len(j.workflowSteps))
	for k, v := range j.workflowSteps {
		steps[k] = v
	}
	return steps
}

func (j *JobType) StockRequirements() []StockRequirement {
	reqs := make([]StockRequirement, len(j.requirements))
	copy(reqs, j.requirements)
	return reqs
}

func (j *JobType) AvgConsumptions() []AvgConsumption {
	links := make([]AvgConsumption, len(j.avgConsumption))
	copy(links, j.avgConsumption)
	return links
}

func (j *JobType) IsActive() bool {
	return j.isActive
}

func (j *JobType) CreatedAt() time.Time {
	return j.createdAt
}

func (j *JobType) UpdatedAt() time.Time {
	return j.updatedAt
}

func (j *JobType) SetID(id uint) error {
	if j.id != 0 {
		return fmt.Errorf("job type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("job type ID cannot be zero")
	}
	j.id = id
	return nil
}

// SetIncentivePrice sets the global per-unit worker incentive.
func (j *JobType) SetIncentivePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("incentive price cannot be negative")
	}
	j.incentivePrice = price
	j.updatedAt = time.Now().UTC()
	return nil
}

// SetPriceTiers replaces the tier collection. Tiers are kept sorted
// ascending by min_quantity so resolution can keep the last match.
func (j *JobType) SetPriceTiers(tiers []PriceTier) error {
	for _, t := range tiers {
		if t.MinQuantity <= 0 {
			return fmt.Errorf("tier min quantity must be positive")
		}
		if t.MaxQuantity != nil && *t.MaxQuantity < t.MinQuantity {
			return fmt.Errorf("tier max quantity %d is below min quantity %d", *t.MaxQuantity, t.MinQuantity)
		}
		if t.Price.IsNegative() {
			return fmt.Errorf("tier price cannot be negative")
		}
	}
	sorted := make([]PriceTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].MinQuantity < sorted[b].MinQuantity
	})
	j.priceTiers = sorted
	j.updatedAt = time.Now().UTC()
	return nil
}

// SetSizeRates replaces the size-variant collection.
func (j *JobType) SetSizeRates(rates []SizeRate) error {
	for _, r := range rates {
		if len(r.VariantName) == 0 {
			return fmt.Errorf("size rate variant name is required")
		}
		if !r.CalculationMethod.IsValid() {
			return fmt.Errorf("invalid calculation method for variant %s", r.VariantName)
		}
		if r.Rate.IsNegative() {
			return fmt.Errorf("rate cannot be negative for variant %s", r.VariantName)
		}
	}
	j.sizeRates = append([]SizeRate(nil), rates...)
	j.updatedAt = time.Now().UTC()
	return nil
}

// SetPromoRules replaces the promo-rule collection, kept sorted ascending by
// buy_quantity.
func (j *JobType) SetPromoRules(rules []PromoRule) error {
	for _, r := range rules {
		if r.BuyQuantity <= 0 {
			return fmt.Errorf("promo buy quantity must be positive")
		}
		if r.FreeQuantity <= 0 {
			return fmt.Errorf("promo free quantity must be positive")
		}
	}
	sorted := make([]PromoRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].BuyQuantity < sorted[b].BuyQuantity
	})
	j.promoRules = sorted
	j.updatedAt = time.Now().UTC()
	return nil
}

// SetWorkflowSteps replaces the per-step configuration map. Validated here,
// at write time, so reads never see a malformed map.
func (j *JobType) SetWorkflowSteps(steps map[string]StepConfig) error {
	for key, cfg := range steps {
		if len(key) == 0 {
			return fmt.Errorf("workflow step key cannot be empty")
		}
		if cfg.IncentivePrice.IsNegative() {
			return fmt.Errorf("incentive price cannot be negative for step %s", key)
		}
	}
	copied := make(map[string]StepConfig, len(steps))
	for k, v := range steps {
		copied[k] = v
	}
	j.workflowSteps = copied
	j.updatedAt = time.Now().UTC()
	return nil
}

// SetStockLinks replaces both consumption link collections.
func (j *JobType) SetStockLinks(requirements []StockRequirement, avg []AvgConsumption) error {
	for _, r := range requirements {
		if r.StockItemID == 0 {
			return fmt.Errorf("stock requirement needs a stock item")
		}
		if !r.QuantityPerUnit.IsPositive() {
			return fmt.Errorf("stock requirement quantity per unit must be positive")
		}
	}
	for _, a := range avg {
		if a.StockItemID == 0 {
			return fmt.Errorf("average consumption needs a stock item")
		}
		if !a.ConsumeType.IsValid() {
			return fmt.Errorf("invalid consume type for stock item %d", a.StockItemID)
		}
		if a.AvgQuantityPerUnit.IsNegative() {
			return fmt.Errorf("average quantity per unit cannot be negative")
		}
	}
	j.requirements = append([]StockRequirement(nil), requirements...)
	j.avgConsumption = append([]AvgConsumption(nil), avg...)
	j.updatedAt = time.Now().UTC()
	return nil
}

// StepIncentive resolves the per-unit worker incentive for a step key: the
// job type's per-step incentive_price when the step is configured with one,
// else the global incentive_price, else zero.
func (j *JobType) StepIncentive(stepKey string) decimal.Decimal {
	if cfg, ok := j.workflowSteps[stepKey]; ok && cfg.IncentivePrice.IsPositive() {
		return cfg.IncentivePrice
	}
	if j.incentivePrice.IsPositive() {
		return j.incentivePrice
	}
	return decimal.Zero
}

// EnabledStepKeys returns the step keys enabled for this job type. Order is
// not defined here; callers order by the global step catalog.
func (j *JobType) EnabledStepKeys() []string {
	keys := make([]string, 0, len(j.workflowSteps))
	for key, cfg := range j.workflowSteps {
		if cfg.Enabled {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (j *JobType) Deactivate() {
	j.isActive = false
	j.updatedAt = time.Now().UTC()
}
