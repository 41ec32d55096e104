package mappers

import (
	"rosecraft/internal/domain/branch"
	"rosecraft/internal/infrastructure/persistence/models"
)

// BranchMapper handles the conversion between Branch domain entities and persistence models.
type BranchMapper interface {
	ToModel(b *branch.Branch) *models.BranchModel
	ToDomain(model *models.BranchModel) (*branch.Branch, error)
}

// BranchMapperImpl is the concrete implementation of BranchMapper.
type BranchMapperImpl struct{}

// NewBranchMapper creates a new BranchMapper.
func NewBranchMapper() BranchMapper {
	return &BranchMapperImpl{}
}

func (m *BranchMapperImpl) ToModel(b *branch.Branch) *models.BranchModel {
	return &models.BranchModel{
		ID:                  b.ID(),
		Name:                b.Name(),
		Code:                b.Code(),
		CanAcceptOrders:     b.CanAcceptOrders(),
		CanProduce:          b.CanProduce(),
		IsDefaultProduction: b.IsDefaultProduction(),
		IsActive:            b.IsActive(),
		CreatedAt:           b.CreatedAt(),
		UpdatedAt:           b.UpdatedAt(),
	}
}

func (m *BranchMapperImpl) ToDomain(model *models.BranchModel) (*branch.Branch, error) {
	return branch.ReconstructBranch(
		model.ID,
		model.Name,
		model.Code,
		model.CanAcceptOrders,
		model.CanProduce,
		model.IsDefaultProduction,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
