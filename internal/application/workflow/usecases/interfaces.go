package usecases

import "context"

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AdvanceStepExecutor interface {
	Execute(ctx context.Context, cmd AdvanceStepCommand) (*AdvanceStepResult, error)
}

type AssignWorkerExecutor interface {
	Execute(ctx context.Context, cmd AssignWorkerCommand) (*AssignWorkerResult, error)
}
