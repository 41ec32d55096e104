// Package db carries the gorm transaction through context so repositories
// join the caller's transaction without threading *gorm.DB parameters.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager opens transactions for use cases. Reconciliation and
// stock movements depend on it: their row locks (SELECT ... FOR UPDATE)
// only hold for the lifetime of the transaction opened here.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a transaction and hands fn a context
// carrying the handle. The transaction commits when fn returns nil and
// rolls back otherwise. A call made while ctx already carries a transaction
// joins it instead of opening a second one, so a use case invoking another
// use case stays atomic.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the context-carried transaction, or defaultDB
// when the caller runs outside one. Repositories route every statement
// through this so reads inside a transaction observe its uncommitted
// writes and hold its locks.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
