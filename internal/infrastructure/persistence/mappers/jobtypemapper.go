package mappers

import (
	"encoding/json"
	"fmt"

	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/infrastructure/persistence/models"
)

// JobTypeMapper handles the conversion between JobType domain entities and persistence models.
type JobTypeMapper interface {
	ToModel(j *jobtype.JobType) *models.JobTypeModel
	ToDomain(model *models.JobTypeModel) (*jobtype.JobType, error)
}

// JobTypeMapperImpl is the concrete implementation of JobTypeMapper.
type JobTypeMapperImpl struct{}

// NewJobTypeMapper creates a new JobTypeMapper.
func NewJobTypeMapper() JobTypeMapper {
	return &JobTypeMapperImpl{}
}

// ToModel converts a job type domain entity to a persistence model. The
// pricing collections and workflow step config are stored as JSON columns.
func (m *JobTypeMapperImpl) ToModel(j *jobtype.JobType) *models.JobTypeModel {
	model := &models.JobTypeModel{
		ID:             j.ID(),
		Name:           j.Name(),
		Code:           j.Code(),
		Price:          j.Price(),
		IncentivePrice: j.IncentivePrice(),
		IsActive:       j.IsActive(),
		CreatedAt:      j.CreatedAt(),
		UpdatedAt:      j.UpdatedAt(),
	}

	if tiers := j.PriceTiers(); len(tiers) > 0 {
		data, _ := json.Marshal(tiers)
		model.PriceTiers = data
	}
	if rates := j.SizeRates(); len(rates) > 0 {
		data, _ := json.Marshal(rates)
		model.SizeRates = data
	}
	if rules := j.PromoRules(); len(rules) > 0 {
		data, _ := json.Marshal(rules)
		model.PromoRules = data
	}
	if steps := j.WorkflowSteps(); len(steps) > 0 {
		data, _ := json.Marshal(steps)
		model.WorkflowSteps = data
	}
	if reqs := j.StockRequirements(); len(reqs) > 0 {
		data, _ := json.Marshal(reqs)
		model.Requirements = data
	}
	if avg := j.AvgConsumptions(); len(avg) > 0 {
		data, _ := json.Marshal(avg)
		model.AvgConsumption = data
	}

	return model
}

// ToDomain converts a job type persistence model to a domain entity.
func (m *JobTypeMapperImpl) ToDomain(model *models.JobTypeModel) (*jobtype.JobType, error) {
	var (
		priceTiers     []jobtype.PriceTier
		sizeRates      []jobtype.SizeRate
		promoRules     []jobtype.PromoRule
		workflowSteps  map[string]jobtype.StepConfig
		requirements   []jobtype.StockRequirement
		avgConsumption []jobtype.AvgConsumption
	)

	columns := []struct {
		name string
		data []byte
		dst  interface{}
	}{
		{"price_tiers", model.PriceTiers, &priceTiers},
		{"size_rates", model.SizeRates, &sizeRates},
		{"promo_rules", model.PromoRules, &promoRules},
		{"workflow_steps", model.WorkflowSteps, &workflowSteps},
		{"requirements", model.Requirements, &requirements},
		{"avg_consumption", model.AvgConsumption, &avgConsumption},
	}
	for _, c := range columns {
		if len(c.data) == 0 {
			continue
		}
		if err := json.Unmarshal(c.data, c.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job type %s (id=%d): %w", c.name, model.ID, err)
		}
	}

	return jobtype.ReconstructJobType(
		model.ID,
		model.Name,
		model.Code,
		model.Price,
		model.IncentivePrice,
		priceTiers,
		sizeRates,
		promoRules,
		workflowSteps,
		requirements,
		avgConsumption,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
