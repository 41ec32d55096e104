package mappers

import (
	"rosecraft/internal/domain/stock"
	vo "rosecraft/internal/domain/stock/valueobjects"
	"rosecraft/internal/infrastructure/persistence/models"
)

// StockMapper handles the conversion between stock domain entities and persistence models.
type StockMapper interface {
	ItemToModel(s *stock.StockItem) *models.StockItemModel
	ItemToDomain(model *models.StockItemModel) (*stock.StockItem, error)
	MovementToModel(mv *stock.Movement) *models.StockMovementModel
	MovementToDomain(model *models.StockMovementModel) (*stock.Movement, error)
}

// StockMapperImpl is the concrete implementation of StockMapper.
type StockMapperImpl struct{}

// NewStockMapper creates a new StockMapper.
func NewStockMapper() StockMapper {
	return &StockMapperImpl{}
}

func (m *StockMapperImpl) ItemToModel(s *stock.StockItem) *models.StockItemModel {
	return &models.StockItemModel{
		ID:              s.ID(),
		Name:            s.Name(),
		SKU:             s.SKU(),
		Unit:            s.Unit(),
		MeasurementType: s.MeasurementType().String(),
		CurrentStock:    s.CurrentStock(),
		MinimumStock:    s.MinimumStock(),
		MaximumStock:    s.MaximumStock(),
		UnitCost:        s.UnitCost(),
		IsActive:        s.IsActive(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func (m *StockMapperImpl) ItemToDomain(model *models.StockItemModel) (*stock.StockItem, error) {
	measurementType, _ := vo.NewMeasurementType(model.MeasurementType)

	return stock.ReconstructStockItem(
		model.ID,
		model.Name,
		model.SKU,
		model.Unit,
		measurementType,
		model.CurrentStock,
		model.MinimumStock,
		model.MaximumStock,
		model.UnitCost,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *StockMapperImpl) MovementToModel(mv *stock.Movement) *models.StockMovementModel {
	return &models.StockMovementModel{
		ID:            mv.ID(),
		StockItemID:   mv.StockItemID(),
		MovementType:  mv.MovementType().String(),
		Quantity:      mv.Quantity(),
		StockBefore:   mv.StockBefore(),
		StockAfter:    mv.StockAfter(),
		ReferenceKind: mv.ReferenceKind().String(),
		ReferenceID:   mv.ReferenceID(),
		PerformedBy:   mv.PerformedBy(),
		Notes:         mv.Notes(),
		CreatedAt:     mv.CreatedAt(),
	}
}

func (m *StockMapperImpl) MovementToDomain(model *models.StockMovementModel) (*stock.Movement, error) {
	movementType, _ := vo.NewMovementType(model.MovementType)

	return stock.ReconstructMovement(
		model.ID,
		model.StockItemID,
		movementType,
		model.Quantity,
		model.StockBefore,
		model.StockAfter,
		vo.ReferenceKind(model.ReferenceKind),
		model.ReferenceID,
		model.PerformedBy,
		model.Notes,
		model.CreatedAt,
	)
}
