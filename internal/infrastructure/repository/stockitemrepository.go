package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rosecraft/internal/domain/stock"
	"rosecraft/internal/infrastructure/persistence/mappers"
	"rosecraft/internal/infrastructure/persistence/models"
	db "rosecraft/internal/shared/db"
)

type StockItemRepository struct {
	db     *gorm.DB
	mapper mappers.StockMapper
}

func NewStockItemRepository(db *gorm.DB) *StockItemRepository {
	return &StockItemRepository{
		db:     db,
		mapper: mappers.NewStockMapper(),
	}
}

func (r *StockItemRepository) Save(ctx context.Context, s *stock.StockItem) error {
	model := r.mapper.ItemToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save stock item: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *StockItemRepository) Update(ctx context.Context, s *stock.StockItem) error {
	model := r.mapper.ItemToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StockItemModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update stock item: %w", result.Error)
	}

	return nil
}

func (r *StockItemRepository) GetByID(ctx context.Context, id uint) (*stock.StockItem, error) {
	var model models.StockItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find stock item: %w", err)
	}

	return r.mapper.ItemToDomain(&model)
}

// GetByIDForUpdate loads an item under a row lock so concurrent movements
// serialize on the balance.
func (r *StockItemRepository) GetByIDForUpdate(ctx context.Context, id uint) (*stock.StockItem, error) {
	var model models.StockItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find stock item for update: %w", err)
	}

	return r.mapper.ItemToDomain(&model)
}

func (r *StockItemRepository) ListActive(ctx context.Context) ([]*stock.StockItem, error) {
	var rows []models.StockItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *StockItemRepository) ListBelowMinimum(ctx context.Context) ([]*stock.StockItem, error) {
	var rows []models.StockItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ? AND current_stock < minimum_stock", true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock items below minimum: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *StockItemRepository) toDomainSlice(rows []models.StockItemModel) ([]*stock.StockItem, error) {
	items := make([]*stock.StockItem, 0, len(rows))
	for i := range rows {
		item, err := r.mapper.ItemToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
