package workflow

import "context"

type StepRepository interface {
	Save(ctx context.Context, s *Step) error
	Update(ctx context.Context, s *Step) error
	GetByKey(ctx context.Context, key string) (*Step, error)
	// ListActive returns active catalog steps ordered by step_order.
	ListActive(ctx context.Context) ([]*Step, error)
	ListAll(ctx context.Context) ([]*Step, error)
}

type ProgressRepository interface {
	Save(ctx context.Context, p *Progress) error
	Update(ctx context.Context, p *Progress) error
	GetByTicketAndStep(ctx context.Context, ticketID uint, stepKey string) (*Progress, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Progress, error)
}

type AssignmentRepository interface {
	Save(ctx context.Context, a *Assignment) error
	Update(ctx context.Context, a *Assignment) error
	GetActive(ctx context.Context, ticketID uint, stepKey string, workerID uint) (*Assignment, error)
	ListActiveByTicket(ctx context.Context, ticketID uint) ([]*Assignment, error)
	ListActiveByWorker(ctx context.Context, workerID uint) ([]*Assignment, error)
}
