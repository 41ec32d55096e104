// Package workflow wires the step tracker to ticket and job-type data.
package workflow

import (
	"context"

	"rosecraft/internal/domain/jobtype"
	"rosecraft/internal/domain/ticket"
	"rosecraft/internal/domain/workflow"
)

// SequenceResolver resolves the step sequence governing a ticket: the
// ticket's own override first, then the job type's enabled steps in catalog
// order, then the configured system default.
type SequenceResolver struct {
	jobTypeRepo   jobtype.Repository
	stepRepo      workflow.StepRepository
	tracker       *workflow.Tracker
	systemDefault []string
}

func NewSequenceResolver(
	jobTypeRepo jobtype.Repository,
	stepRepo workflow.StepRepository,
	systemDefault []string,
) *SequenceResolver {
	return &SequenceResolver{
		jobTypeRepo:   jobTypeRepo,
		stepRepo:      stepRepo,
		tracker:       workflow.NewTracker(),
		systemDefault: systemDefault,
	}
}

func (r *SequenceResolver) ResolveForTicket(ctx context.Context, t *ticket.Ticket) ([]string, error) {
	var jobTypeSteps []string
	if t.JobTypeID() != nil {
		jt, err := r.jobTypeRepo.GetByID(ctx, *t.JobTypeID())
		if err != nil {
			return nil, err
		}
		if jt != nil {
			jobTypeSteps = jt.EnabledStepKeys()
		}
	}

	catalog, err := r.stepRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return r.tracker.ResolveSequence(t.CustomWorkflowSteps(), jobTypeSteps, r.systemDefault, catalog), nil
}
