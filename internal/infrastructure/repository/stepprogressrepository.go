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

type StepProgressRepository struct {
	db     *gorm.DB
	mapper mappers.WorkflowMapper
}

func NewStepProgressRepository(db *gorm.DB) *StepProgressRepository {
	return &StepProgressRepository{
		db:     db,
		mapper: mappers.NewWorkflowMapper(),
	}
}

func (r *StepProgressRepository) Save(ctx context.Context, p *workflow.Progress) error {
	model := r.mapper.ProgressToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save step progress: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *StepProgressRepository) Update(ctx context.Context, p *workflow.Progress) error {
	model := r.mapper.ProgressToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StepProgressModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update step progress: %w", result.Error)
	}

	return nil
}

func (r *StepProgressRepository) GetByTicketAndStep(ctx context.Context, ticketID uint, stepKey string) (*workflow.Progress, error) {
	var model models.StepProgressModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ? AND step_key = ?", ticketID, stepKey).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find step progress: %w", err)
	}

	return r.mapper.ProgressToDomain(&model)
}

func (r *StepProgressRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*workflow.Progress, error) {
	var rows []models.StepProgressModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list step progress: %w", err)
	}

	progresses := make([]*workflow.Progress, 0, len(rows))
	for i := range rows {
		p, err := r.mapper.ProgressToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		progresses = append(progresses, p)
	}

	return progresses, nil
}
