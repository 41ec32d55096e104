package mappers

import (
	"rosecraft/internal/domain/workflow"
	"rosecraft/internal/infrastructure/persistence/models"
)

// WorkflowMapper handles the conversion between workflow domain entities and persistence models.
type WorkflowMapper interface {
	StepToModel(s *workflow.Step) *models.WorkflowStepModel
	StepToDomain(model *models.WorkflowStepModel) (*workflow.Step, error)
	ProgressToModel(p *workflow.Progress) *models.StepProgressModel
	ProgressToDomain(model *models.StepProgressModel) (*workflow.Progress, error)
	AssignmentToModel(a *workflow.Assignment) *models.StepAssignmentModel
	AssignmentToDomain(model *models.StepAssignmentModel) (*workflow.Assignment, error)
}

// WorkflowMapperImpl is the concrete implementation of WorkflowMapper.
type WorkflowMapperImpl struct{}

// NewWorkflowMapper creates a new WorkflowMapper.
func NewWorkflowMapper() WorkflowMapper {
	return &WorkflowMapperImpl{}
}

func (m *WorkflowMapperImpl) StepToModel(s *workflow.Step) *models.WorkflowStepModel {
	return &models.WorkflowStepModel{
		ID:        s.ID(),
		Key:       s.Key(),
		Name:      s.Name(),
		StepOrder: s.StepOrder(),
		IsActive:  s.IsActive(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func (m *WorkflowMapperImpl) StepToDomain(model *models.WorkflowStepModel) (*workflow.Step, error) {
	return workflow.ReconstructStep(
		model.ID,
		model.Key,
		model.Name,
		model.StepOrder,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *WorkflowMapperImpl) ProgressToModel(p *workflow.Progress) *models.StepProgressModel {
	return &models.StepProgressModel{
		ID:                p.ID(),
		TicketID:          p.TicketID(),
		StepKey:           p.StepKey(),
		CompletedQuantity: p.CompletedQuantity(),
		IsCompleted:       p.IsCompleted(),
		CompletedBy:       p.CompletedBy(),
		CompletedAt:       p.CompletedAt(),
		Notes:             p.Notes(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func (m *WorkflowMapperImpl) ProgressToDomain(model *models.StepProgressModel) (*workflow.Progress, error) {
	return workflow.ReconstructProgress(
		model.ID,
		model.TicketID,
		model.StepKey,
		model.CompletedQuantity,
		model.IsCompleted,
		model.CompletedBy,
		model.CompletedAt,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *WorkflowMapperImpl) AssignmentToModel(a *workflow.Assignment) *models.StepAssignmentModel {
	return &models.StepAssignmentModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		StepKey:    a.StepKey(),
		WorkerID:   a.WorkerID(),
		AssignedBy: a.AssignedBy(),
		IsActive:   a.IsActive(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func (m *WorkflowMapperImpl) AssignmentToDomain(model *models.StepAssignmentModel) (*workflow.Assignment, error) {
	return workflow.ReconstructAssignment(
		model.ID,
		model.TicketID,
		model.StepKey,
		model.WorkerID,
		model.AssignedBy,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
