package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rosecraft/internal/domain/branch"
	"rosecraft/internal/infrastructure/persistence/mappers"
	"rosecraft/internal/infrastructure/persistence/models"
	db "rosecraft/internal/shared/db"
)

type BranchRepository struct {
	db     *gorm.DB
	mapper mappers.BranchMapper
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{
		db:     db,
		mapper: mappers.NewBranchMapper(),
	}
}

func (r *BranchRepository) Save(ctx context.Context, b *branch.Branch) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save branch: %w", err)
	}

	if err := b.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *BranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BranchModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update branch: %w", result.Error)
	}

	return nil
}

func (r *BranchRepository) GetByID(ctx context.Context, id uint) (*branch.Branch, error) {
	var model models.BranchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find branch: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetDefaultProduction returns (nil, nil) when no branch carries the flag.
func (r *BranchRepository) GetDefaultProduction(ctx context.Context) (*branch.Branch, error) {
	var model models.BranchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_default_production = ? AND is_active = ?", true, true).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find default production branch: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BranchRepository) ListActive(ctx context.Context) ([]*branch.Branch, error) {
	var rows []models.BranchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	branches := make([]*branch.Branch, 0, len(rows))
	for i := range rows {
		b, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, nil
}
