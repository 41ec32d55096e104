package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/infrastructure/persistence/mappers"
	"rosecraft/internal/infrastructure/persistence/models"
	db "rosecraft/internal/shared/db"
)

type WorkflowStepRepository struct {
	db     *gorm.DB
	mapper mappers.WorkflowMapper
}

func NewWorkflowStepRepository(db *gorm.DB) *WorkflowStepRepository {
	return &WorkflowStepRepository{
		db:     db,
		mapper: mappers.NewWorkflowMapper(),
	}
}

func (r *WorkflowStepRepository) Save(ctx context.Context, s *workflow.Step) error {
	model := r.mapper.StepToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save workflow step: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *WorkflowStepRepository) Update(ctx context.Context, s *workflow.Step) error {
	model := r.mapper.StepToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.WorkflowStepModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update workflow step: %w", result.Error)
	}

	return nil
}

func (r *WorkflowStepRepository) GetByKey(ctx context.Context, key string) (*workflow.Step, error) {
	var model models.WorkflowStepModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("`key` = ?", key).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find workflow step: %w", err)
	}

	return r.mapper.StepToDomain(&model)
}

// ListActive returns the active catalog ordered by step_order. This order
// defines the production sequence for job types that enable the steps.
func (r *WorkflowStepRepository) ListActive(ctx context.Context) ([]*workflow.Step, error) {
	return r.list(ctx, true)
}

func (r *WorkflowStepRepository) ListAll(ctx context.Context) ([]*workflow.Step, error) {
	return r.list(ctx, false)
}

func (r *WorkflowStepRepository) list(ctx context.Context, activeOnly bool) ([]*workflow.Step, error) {
	var rows []models.WorkflowStepModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("step_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list workflow steps: %w", err)
	}

	steps := make([]*workflow.Step, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.StepToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}

	return steps, nil
}
