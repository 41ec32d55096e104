package usecases

import "context"

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ConsumeStockExecutor interface {
	Execute(ctx context.Context, cmd ConsumeStockCommand) (*ConsumeStockResult, error)
}

type ReceiveStockExecutor interface {
	Execute(ctx context.Context, cmd ReceiveStockCommand) (*MovementResult, error)
}

type AdjustStockExecutor interface {
	Execute(ctx context.Context, cmd AdjustStockCommand) (*MovementResult, error)
}
