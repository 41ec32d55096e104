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

type StepAssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.WorkflowMapper
}

func NewStepAssignmentRepository(db *gorm.DB) *StepAssignmentRepository {
	return &StepAssignmentRepository{
		db:     db,
		mapper: mappers.NewWorkflowMapper(),
	}
}

func (r *StepAssignmentRepository) Save(ctx context.Context, a *workflow.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save step assignment: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *StepAssignmentRepository) Update(ctx context.Context, a *workflow.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StepAssignmentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update step assignment: %w", result.Error)
	}

	return nil
}

func (r *StepAssignmentRepository) GetActive(ctx context.Context, ticketID uint, stepKey string, workerID uint) (*workflow.Assignment, error) {
	var model models.StepAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ? AND step_key = ? AND worker_id = ? AND is_active = ?", ticketID, stepKey, workerID, true).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find step assignment: %w", err)
	}

	return r.mapper.AssignmentToDomain(&model)
}

func (r *StepAssignmentRepository) ListActiveByTicket(ctx context.Context, ticketID uint) ([]*workflow.Assignment, error) {
	return r.listActive(ctx, "ticket_id = ?", ticketID)
}

func (r *StepAssignmentRepository) ListActiveByWorker(ctx context.Context, workerID uint) ([]*workflow.Assignment, error) {
	return r.listActive(ctx, "worker_id = ?", workerID)
}

func (r *StepAssignmentRepository) listActive(ctx context.Context, cond string, arg uint) ([]*workflow.Assignment, error) {
	var rows []models.StepAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where(cond, arg).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list step assignments: %w", err)
	}

	assignments := make([]*workflow.Assignment, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.AssignmentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
