package stock

import "context"

type ItemRepository interface {
	Save(ctx context.Context, s *StockItem) error
	Update(ctx context.Context, s *StockItem) error
	GetByID(ctx context.Context, id uint) (*StockItem, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*StockItem, error)
	ListActive(ctx context.Context) ([]*StockItem, error)
	ListBelowMinimum(ctx context.Context) ([]*StockItem, error)
}

type MovementRepository interface {
	Save(ctx context.Context, m *Movement) error
	ListByItem(ctx context.Context, stockItemID uint, limit, offset int) ([]*Movement, error)
	ListByReference(ctx context.Context, ref Reference) ([]*Movement, error)
}
