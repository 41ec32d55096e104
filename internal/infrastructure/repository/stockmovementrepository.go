package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rosecraft/internal/domain/stock"
	"rosecraft/internal/infrastructure/persistence/mappers"
	"rosecraft/internal/infrastructure/persistence/models"
	db "rosecraft/internal/shared/db"
)

type StockMovementRepository struct {
	db     *gorm.DB
	mapper mappers.StockMapper
}

func NewStockMovementRepository(db *gorm.DB) *StockMovementRepository {
	return &StockMovementRepository{
		db:     db,
		mapper: mappers.NewStockMapper(),
	}
}

func (r *StockMovementRepository) Save(ctx context.Context, m *stock.Movement) error {
	model := r.mapper.MovementToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save stock movement: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *StockMovementRepository) ListByItem(ctx context.Context, stockItemID uint, limit, offset int) ([]*stock.Movement, error) {
	var rows []models.StockMovementModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("stock_item_id = ?", stockItemID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *StockMovementRepository) ListByReference(ctx context.Context, ref stock.Reference) ([]*stock.Movement, error) {
	var rows []models.StockMovementModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("reference_kind = ? AND reference_id = ?", ref.Kind.String(), ref.ID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock movements by reference: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *StockMovementRepository) toDomainSlice(rows []models.StockMovementModel) ([]*stock.Movement, error) {
	movements := make([]*stock.Movement, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.MovementToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}
