package usecases

import "context"

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RecordPaymentExecutor interface {
	Execute(ctx context.Context, cmd RecordPaymentCommand) (*RecordPaymentResult, error)
}

type UpdatePaymentExecutor interface {
	Execute(ctx context.Context, cmd UpdatePaymentCommand) (*ReconcileOutcome, error)
}

type RemovePaymentExecutor interface {
	Execute(ctx context.Context, cmd RemovePaymentCommand) (*ReconcileOutcome, error)
}

type VerifyPaymentExecutor interface {
	Execute(ctx context.Context, cmd VerifyPaymentCommand) (*ReconcileOutcome, error)
}
